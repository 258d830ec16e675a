// SPDX-License-Identifier: MIT

// Command hottopixx finds the boundary rows of a near-separable nonnegative
// matrix with the HOTTOPIXX solver.
//
//	hottopixx run --epochs 30 --target 2            # reference demo
//	hottopixx run --config run.yaml --output out.yaml
//	hottopixx generate --rows 20 --cols 6 --source all > X.yaml
//	hottopixx run --input X.yaml --target 3
//
// Settings come from flags, HOTTOPIXX_* environment variables and an
// optional YAML config file, in that order of precedence.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand(os.Stdout, logrus.StandardLogger()).ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Fatal("hottopixx failed")
	}
}
