package preview

import (
	"strconv"

	"github.com/fabric-jumpstart/jumpgen/pkg/cli"
	"github.com/fabric-jumpstart/jumpgen/pkg/logging"
	previewserver "github.com/fabric-jumpstart/jumpgen/pkg/preview"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

func GetCommands() []*cobra.Command {
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview generated content",
		Long:  `Start the local catalog preview service`,
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args)
		}}

	previewCmd.Flags().IntP("port", "p", 3001, "Define port number for the local preview")
	previewCmd.Flags().StringP("output", "o", "generated", "Define path to the generated output directory")

	return []*cobra.Command{previewCmd}
}

func run(cmd *cobra.Command, args []string) {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		logging.Log.Fatal("invalid port number given")
	}
	outputDir, err := cmd.Flags().GetString("output")
	if err != nil {
		logging.Log.Fatal("invalid output directory given")
	}

	server, err := previewserver.GetPreviewServer("localhost", port, outputDir)
	if err != nil {
		logging.Log.Fatal(err)
	}

	go server.Start()
	logging.Log.Debugf("✔ Started catalog preview at %s:%d", "localhost", port)

	err = browser.OpenURL("http://localhost:" + strconv.Itoa(port) + "/index")
	if err != nil {
		logging.Log.Fatal("could not call browser")
	}
	cli.CloseHandler(server.Stop)
}
