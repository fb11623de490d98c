package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"gridshelf/config"
	"gridshelf/internal/tui"
	"gridshelf/pkg/layout"
	"gridshelf/version"
)

var rootCmd = &cobra.Command{
	Use:   "gridshelf",
	Short: "Responsive grid-flow shelf for the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		presetName, _ := cmd.Flags().GetString("preset")

		presetPath, err := config.GetPresetsFile()
		if err != nil {
			log.Fatalf("failed to locate presets: %v", err)
		}
		if err := tui.Start(presetName, presetPath); err != nil {
			log.Fatal(err)
		}
	},
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Compute one layout and print the placements",
	Long: `Computes a grid-flow layout for the given viewport and item list without
starting the TUI. Items are given as WxH:COUNT groups, e.g. --items 40x40:15.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		width, _ := flags.GetInt("width")
		height, _ := flags.GetInt("height")
		itemSpec, _ := flags.GetString("items")
		thickness, _ := flags.GetInt("thickness")
		asJSON, _ := flags.GetBool("json")

		opts := layout.DefaultOptions()
		for _, name := range []string{"orientation", "start", "spacing", "minpad", "minsize", "autoscroll", "center", "sticky"} {
			value, _ := flags.GetString(name)
			if value == "" {
				continue
			}
			if err := opts.Set(name, value, nil); err != nil {
				return err
			}
		}

		children, err := parseItems(itemSpec)
		if err != nil {
			return err
		}

		res := layout.Compute(layout.Input{
			Viewport:           layout.Size{W: width, H: height},
			Children:           children,
			Options:            opts,
			ScrollbarThickness: thickness,
		})

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		fmt.Printf("grid %dx%d  parcel %d  content %dx%d  scroll %v\n",
			res.Cols, res.Rows, res.Parcel, res.ContentW, res.ContentH, res.NeedScroll)
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "HANDLE\tCELL\tX\tY\tANCHOR")
		for _, p := range res.Placements {
			fmt.Fprintf(w, "%s\t(%d,%d)\t%d\t%d\t%s\n", p.Handle, p.Row, p.Col, p.X, p.Y, p.Anchor)
		}
		return w.Flush()
	},
}

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage layout presets",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := config.LoadPresets()
		if err != nil {
			return err
		}
		for _, p := range presets.Presets {
			fmt.Println(p.Name)
		}
		return nil
	},
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one preset's options",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := config.LoadPresets()
		if err != nil {
			return err
		}
		p, ok := presets.Find(args[0])
		if !ok {
			return fmt.Errorf("preset %q not found", args[0])
		}
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		for name, value := range p.Options {
			fmt.Fprintf(w, "%s\t%s\n", name, value)
		}
		return w.Flush()
	},
}

var presetNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a preset interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			name        string
			orientation = "vertical"
			start       = "nw"
			spacing     = "2"
			minpad      = "5"
			center      bool
		)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Preset name").
					Value(&name),
				huh.NewSelect[string]().
					Title("Orientation").
					Options(
						huh.NewOption("vertical", "vertical"),
						huh.NewOption("horizontal", "horizontal"),
					).
					Value(&orientation),
				huh.NewSelect[string]().
					Title("Start corner").
					Options(
						huh.NewOption("nw", "nw"),
						huh.NewOption("ne", "ne"),
						huh.NewOption("sw", "sw"),
						huh.NewOption("se", "se"),
					).
					Value(&start),
				huh.NewInput().
					Title("Spacing (length, e.g. 2 or 3pt)").
					Value(&spacing),
				huh.NewInput().
					Title("Padding").
					Value(&minpad),
				huh.NewConfirm().
					Title("Center the grid?").
					Value(&center),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("preset name is required")
		}

		options := map[string]string{
			"orientation": orientation,
			"start":       start,
			"spacing":     spacing,
			"minpad":      minpad,
			"center":      "0",
		}
		if center {
			options["center"] = "1"
		}

		// Validate before saving so a bad length never lands on disk.
		probe := layout.DefaultOptions()
		for optName, value := range options {
			if err := probe.Set(optName, value, nil); err != nil {
				return err
			}
		}

		presets, err := config.LoadPresets()
		if err != nil {
			return err
		}
		presets.Upsert(config.Preset{Name: name, Options: options})
		if err := config.SavePresets(presets); err != nil {
			return err
		}
		fmt.Printf("saved preset %q\n", name)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gridshelf %s\n", version.Get())
	},
}

// parseItems expands WxH:COUNT groups into a child list.
func parseItems(spec string) ([]layout.Child, error) {
	var children []layout.Child
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	for _, group := range strings.Split(spec, ",") {
		dims, count := group, 1
		if at := strings.IndexByte(group, ':'); at >= 0 {
			dims = group[:at]
			n, err := strconv.Atoi(group[at+1:])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("bad item count in %q", group)
			}
			count = n
		}
		wh := strings.SplitN(strings.ToLower(dims), "x", 2)
		if len(wh) != 2 {
			return nil, fmt.Errorf("bad item size %q, want WxH", dims)
		}
		w, werr := strconv.Atoi(wh[0])
		h, herr := strconv.Atoi(wh[1])
		if werr != nil || herr != nil || w < 0 || h < 0 {
			return nil, fmt.Errorf("bad item size %q, want WxH", dims)
		}
		for i := 0; i < count; i++ {
			children = append(children, layout.Child{
				Handle: fmt.Sprintf("item-%d", len(children)),
				W:      w,
				H:      h,
			})
		}
	}
	return children, nil
}

func init() {
	rootCmd.Flags().String("preset", "default", "Preset to start the demo with")

	layoutCmd.Flags().Int("width", 320, "Viewport width in pixels")
	layoutCmd.Flags().Int("height", 200, "Viewport height in pixels")
	layoutCmd.Flags().String("items", "40x40:15", "Items as WxH:COUNT groups")
	layoutCmd.Flags().Int("thickness", 18, "Scrollbar thickness for the correction pass")
	layoutCmd.Flags().Bool("json", false, "Print the result as JSON")
	layoutCmd.Flags().String("orientation", "", "Growth orientation (vertical|horizontal)")
	layoutCmd.Flags().String("start", "", "Start corner (nw|ne|sw|se)")
	layoutCmd.Flags().String("spacing", "", "Gap between parcels")
	layoutCmd.Flags().String("minpad", "", "Inner padding")
	layoutCmd.Flags().String("minsize", "", "Stretch-axis floor")
	layoutCmd.Flags().String("autoscroll", "", "Scrollbar management (0|1)")
	layoutCmd.Flags().String("center", "", "Center the grid (0|1)")
	layoutCmd.Flags().String("sticky", "", "Sticky sides (combination of news)")

	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetNewCmd)

	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
