package cmd

import (
	"bytes"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List built-in scenes and the JSON scenes found in the scenes directory.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	scenes, err := scene.ListAllScenes()
	if err != nil {
		return err
	}

	logger.Notice(formatSceneTable(scenes))
	return nil
}

func formatSceneTable(scenes scene.ScenesResponse) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "ID", "Name", "Description"})
	for _, group := range scenes.Groups {
		for _, info := range group.Scenes {
			table.Append([]string{group.Name, info.ID, info.Name, info.Description})
		}
	}
	table.Render()

	return "\n" + buf.String()
}
