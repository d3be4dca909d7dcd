// Command velocity prepares velocity simulation exports for model training.
package main

import (
	"os"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/cli"
	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
)

func main() {
	os.Exit(apperrors.ExitCode(cli.Execute()))
}
