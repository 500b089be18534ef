package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"progressive-squares/progressive"
	"progressive-squares/residue"
)

func main() {
	inPath := flag.String("in", "report.json", "input run report JSON")
	outPath := flag.String("out", "plot_solutions.html", "output HTML file")
	flag.Parse()

	rep, err := progressive.ReadReport(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
	if len(rep.Values) == 0 {
		fmt.Fprintf(os.Stderr, "no solutions in %s\n", *inPath)
		os.Exit(1)
	}

	page := components.NewPage().SetPageTitle("Progressive Perfect Squares")

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Progressive perfect squares below %d", rep.Bound),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
			Formatter: opts.FuncOpts(`
function (p) {
  var v = p.value || [];
  return 'root: ' + v[0] + '<br/>n: ' + v[1];
}`),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Integer square root",
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "n",
			Type: "log",
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
				Restore:     &opts.ToolBoxFeatureRestore{Show: opts.Bool(true)},
			},
		}),
	)

	items := make([]opts.ScatterData, 0, len(rep.Values))
	for _, n := range rep.Values {
		items = append(items, opts.ScatterData{
			Value: []interface{}{residue.Isqrt(n), n},
		})
	}
	sc.AddSeries("solutions", items,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 8}),
	)

	page.AddCharts(sc)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s | points: %d\n", *outPath, len(items))
}
