package config

import (
	"iter"
	"slices"

	"lazyseq/seqs"
)

func fnOf(name string, arg int) func(int) int {
	switch name {
	case "add":
		return func(v int) int { return v + arg }
	case "sub":
		return func(v int) int { return v - arg }
	case "mul":
		return func(v int) int { return v * arg }
	case "div":
		return func(v int) int { return v / arg }
	case "mod":
		return func(v int) int { return v % arg }
	case "neg":
		return func(v int) int { return -v }
	case "square":
		return func(v int) int { return v * v }
	}
	panic("config: unknown fn " + name)
}

func accOf(name string) func(acc, v int) int {
	switch name {
	case "add":
		return func(acc, v int) int { return acc + v }
	case "sub":
		return func(acc, v int) int { return acc - v }
	case "mul":
		return func(acc, v int) int { return acc * v }
	}
	panic("config: unknown accumulator " + name)
}

func predOf(name string, arg int) func(int) bool {
	switch name {
	case "even":
		return func(v int) bool { return v%2 == 0 }
	case "odd":
		return func(v int) bool { return v%2 != 0 }
	case "lt":
		return func(v int) bool { return v < arg }
	case "le":
		return func(v int) bool { return v <= arg }
	case "gt":
		return func(v int) bool { return v > arg }
	case "ge":
		return func(v int) bool { return v >= arg }
	case "eq":
		return func(v int) bool { return v == arg }
	case "ne":
		return func(v int) bool { return v != arg }
	}
	panic("config: unknown predicate " + name)
}

func seqsRange(r Range) iter.Seq[int] {
	return seqs.Range(r.Start, r.End, r.Step)
}

func valuesOf(values []int) iter.Seq[int] {
	return slices.Values(slices.Clone(values))
}
