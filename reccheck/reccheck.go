package main

import (
	"fibseq/recursioncheck"

	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(recursioncheck.Analyzer)
}
