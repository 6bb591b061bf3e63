package main

import (
	"os"

	"github.com/soundprediction/cooccur/cmd/cooccur"
)

func main() {
	if err := cooccur.Execute(); err != nil {
		os.Exit(1)
	}
}
