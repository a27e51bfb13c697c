package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	anchorui "github.com/grindlemire/go-anchorui"
	"github.com/grindlemire/go-anchorui/internal/observability"
	"github.com/grindlemire/go-anchorui/internal/treefile"
)

var canvasFlag string

// boundsRow is one element's computed bounds in the JSON output.
type boundsRow struct {
	ID      int64   `json:"id"`
	Type    string  `json:"type,omitempty"`
	Name    string  `json:"name,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Visible bool    `json:"visible"`
}

var layoutCmd = &cobra.Command{
	Use:   "layout <tree.yaml>",
	Short: "Compute absolute bounds for a tree file",
	Long: `Loads an element tree from a YAML tree file, computes the absolute
pixel rectangle of every element against the configured canvas, and
prints the result as JSON in depth-first order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		canvas, err := canvasRect()
		if err != nil {
			return err
		}

		root, err := treefile.Load(args[0])
		if err != nil {
			return err
		}

		log := observability.Logger()
		log.Info("computing layout",
			zap.String("file", args[0]),
			zap.Int("elements", root.Count()),
			zap.Float64("canvasWidth", canvas.Width),
			zap.Float64("canvasHeight", canvas.Height),
		)

		result := anchorui.Calculate(root, canvas)

		rows := make([]boundsRow, 0, len(result))
		root.Walk(func(e *anchorui.Element) bool {
			b := result[e.ID()]
			name, _ := e.Text("Name")
			rows = append(rows, boundsRow{
				ID:      int64(b.ID),
				Type:    e.Type(),
				Name:    name,
				X:       b.Rect.X,
				Y:       b.Rect.Y,
				Width:   b.Rect.Width,
				Height:  b.Rect.Height,
				Visible: b.Visible,
			})
			return true
		})
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

		out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding bounds: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	layoutCmd.Flags().StringVar(&canvasFlag, "canvas", "", "canvas size as WxH, e.g. 1920x1080 (overrides config)")
	rootCmd.AddCommand(layoutCmd)
}

// canvasRect resolves the canvas from the --canvas flag or configuration.
func canvasRect() (anchorui.Rect, error) {
	if canvasFlag == "" {
		return anchorui.NewRect(0, 0, cfg.Canvas.Width, cfg.Canvas.Height), nil
	}

	parts := strings.SplitN(canvasFlag, "x", 2)
	if len(parts) != 2 {
		return anchorui.Rect{}, fmt.Errorf("invalid canvas %q, want WxH", canvasFlag)
	}
	w, errW := strconv.ParseFloat(parts[0], 64)
	h, errH := strconv.ParseFloat(parts[1], 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return anchorui.Rect{}, fmt.Errorf("invalid canvas %q, want positive WxH", canvasFlag)
	}
	return anchorui.NewRect(0, 0, w, h), nil
}
