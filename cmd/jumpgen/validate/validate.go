package validate

import (
	"github.com/fabric-jumpstart/jumpgen/pkg/logging"
	"github.com/fabric-jumpstart/jumpgen/pkg/scenario"
	"github.com/spf13/cobra"
)

func GetCommands() []*cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate scenario descriptors",
		Long:  `Run the contract checks over every scenario descriptor`,
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args)
		}}

	validateCmd.Flags().StringP("scenarios", "s", "jumpstarts/core", "Define path to the scenario descriptor directory")

	return []*cobra.Command{validateCmd}
}

func run(cmd *cobra.Command, args []string) {
	scenariosDir, err := cmd.Flags().GetString("scenarios")
	if err != nil {
		logging.Log.Fatal(err)
	}

	files, err := scenario.LoadDir(scenariosDir)
	if err != nil {
		logging.Log.Fatal(err)
	}
	if len(files) == 0 {
		logging.Log.Fatal("found no scenario descriptors")
	}

	if duplicates := scenario.DuplicateIDs(files); len(duplicates) > 0 {
		logging.Log.Warnf("✗ duplicate scenario ids: %v", duplicates)
	}

	violations := scenario.Validate(files)
	for _, violation := range violations {
		logging.Log.WithField("file", violation.File).Error(violation.Message)
	}
	if len(violations) > 0 {
		logging.Log.Fatalf("✗ %d contract violations across %d descriptors", len(violations), len(files))
	}

	logging.Log.Debugf("✔ %d descriptors passed the contract checks", len(files))
}
