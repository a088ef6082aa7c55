package test

import (
	"math/rand"
	"strings"
)

const validTokens = "1;2;7;42;123;1000;3.25;0.5;12.125;+;-;*;/;(;)"

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
