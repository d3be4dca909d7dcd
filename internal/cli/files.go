package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/files"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/validation"
)

// NewFilesCommand creates the files command.
func NewFilesCommand(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List CSV files in the data directory against the configured lists",
		Long: `Show every CSV file in the data directory with its role (training, test
or unlisted), size and header column count, followed by configured files
that are missing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd, global, nil)
			if err != nil {
				return err
			}
			return runFiles(cmd, rt)
		},
	}
}

func runFiles(cmd *cobra.Command, rt *runtime) error {
	validator := validation.NewFileValidator(rt.logger)
	if _, err := validator.ValidateInputDirectory(rt.paths.DataDir, ""); err != nil {
		return err
	}

	found, err := files.NewDiscovery(rt.paths.BaseDir).FindCSVFiles(rt.paths.DataDir)
	if err != nil {
		return err
	}

	training := files.Reconcile(rt.cfg.Data.TrainingFiles, found)
	test := files.Reconcile(rt.cfg.Data.TestFiles, found)

	roles := make(map[string]string, len(found))
	for _, f := range training.Present {
		roles[f.Name] = "training"
	}
	for _, f := range test.Present {
		roles[f.Name] = "test"
	}

	rows := make([]inventoryRow, 0, len(found))
	for _, f := range found {
		role, ok := roles[f.Name]
		if !ok {
			role = "unlisted"
		}
		columns := "invalid"
		if n, err := validator.ValidateCSVFile(f.Path); err == nil {
			columns = strconv.Itoa(n)
		}
		rows = append(rows, inventoryRow{name: f.Name, role: role, size: f.Size, columns: columns})
	}

	missing := append(append([]string(nil), training.Missing...), test.Missing...)
	renderInventory(cmd.OutOrStdout(), rows, missing)
	return nil
}
