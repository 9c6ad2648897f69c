// 压测入口：对每个后端依次计时 矩阵x矩阵、矩阵x向量、向量x向量
package main

import "log"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("bench: %v", err)
	}
}
