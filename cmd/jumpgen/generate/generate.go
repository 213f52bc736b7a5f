package generate

import (
	"github.com/fabric-jumpstart/jumpgen/pkg/generate"
	"github.com/fabric-jumpstart/jumpgen/pkg/logging"
	"github.com/spf13/cobra"
)

func GetCommands() []*cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate catalog content",
		Long:  `Generate the docs tree and catalog data files from the scenario descriptors`,
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args)
		}}

	generateCmd.Flags().StringP("scenarios", "s", "jumpstarts/core", "Define path to the scenario descriptor directory")
	generateCmd.Flags().StringP("output", "o", "generated", "Define path to the output directory")
	generateCmd.Flags().String("icons", "assets/images/tags/workload", "Define path to the workload icon directory")
	generateCmd.Flags().String("icon-base-url", "", "Probe icon URLs against this base instead of the icon directory")
	generateCmd.Flags().String("sample-image", "", "Define path to the sample architecture image")
	generateCmd.Flags().Bool("skip-uhf", false, "Skip fetching the footer fragment")

	return []*cobra.Command{generateCmd}
}

func run(cmd *cobra.Command, args []string) {
	scenariosDir, err := cmd.Flags().GetString("scenarios")
	if err != nil {
		logging.Log.Fatal(err)
	}
	outputDir, err := cmd.Flags().GetString("output")
	if err != nil {
		logging.Log.Fatal(err)
	}

	generator := generate.New(scenariosDir, outputDir)
	generator.IconsDir, _ = cmd.Flags().GetString("icons")
	generator.IconBaseURL, _ = cmd.Flags().GetString("icon-base-url")
	generator.SampleImage, _ = cmd.Flags().GetString("sample-image")
	generator.SkipUHF, _ = cmd.Flags().GetBool("skip-uhf")

	if err := generator.Run(); err != nil {
		logging.Log.Fatal(err)
	}

	logging.Log.Debug("✔ content generation complete")
}
