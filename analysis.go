package plantgen

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// GrowthReport describes how an L-system grows generation by generation.
type GrowthReport struct {
	Name    string
	Lengths []int
	// Counts[n][s] is how often s occurs in generation n.
	Counts []map[Symbol]int
	// Rates[n] is Lengths[n] / Lengths[n-1]; Rates[0] is 1.
	Rates []float64
}

// AnalyseGrowth iterates l for the given number of generations and records
// the length and symbol distribution of each one.
func AnalyseGrowth(name string, l *LSystem, generations int) *GrowthReport {
	report := &GrowthReport{
		Name:    name,
		Lengths: make([]int, 0, generations+1),
		Counts:  make([]map[Symbol]int, 0, generations+1),
		Rates:   make([]float64, 0, generations+1),
	}

	prevLen := 0
	for _, commands := range l.Generations(generations) {
		counts := make(map[Symbol]int)
		length := 0
		for _, r := range commands {
			counts[Symbol(r)]++
			length++
		}
		rate := 1.0
		if prevLen > 0 {
			rate = float64(length) / float64(prevLen)
		}
		prevLen = length

		report.Lengths = append(report.Lengths, length)
		report.Counts = append(report.Counts, counts)
		report.Rates = append(report.Rates, rate)
	}

	log.Println("Production rates of " + name + " (avg growth " + strconv.FormatFloat(report.AverageGrowth(), 'f', 4, 64) + ")")
	return report
}

// AverageGrowth is the mean length ratio between consecutive generations.
func (r *GrowthReport) AverageGrowth() float64 {
	if len(r.Rates) < 2 {
		return 1
	}
	sum := 0.0
	for _, rate := range r.Rates[1:] {
		sum += rate
	}
	return sum / float64(len(r.Rates)-1)
}

// Alphabet returns every symbol seen in any generation.
func (r *GrowthReport) Alphabet() SymbolSet {
	set := make(SymbolSet)
	for _, counts := range r.Counts {
		for s := range counts {
			set.Add(s)
		}
	}
	return set
}

func (r *GrowthReport) RenderChart(w io.Writer) error {
	labels := make([]string, len(r.Lengths))
	for i := range r.Lengths {
		labels[i] = strconv.Itoa(i)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Symbol distribution",
		Subtitle: "Symbols per generation of " + r.Name,
	}))
	bar.SetXAxis(labels)
	for _, s := range r.Alphabet().AsSlice() {
		items := make([]opts.BarData, len(r.Counts))
		for i, counts := range r.Counts {
			items[i] = opts.BarData{Value: counts[s]}
		}
		bar.AddSeries(strconv.QuoteRune(rune(s)), items, charts.WithBarChartOpts(opts.BarChart{Stack: "symbols"}))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Production rates (avg growth " + strconv.FormatFloat(r.AverageGrowth(), 'f', 4, 64) + ")",
		Subtitle: "Length ratio between consecutive generations of " + r.Name,
	}))
	rates := make([]opts.LineData, len(r.Rates))
	for i, rate := range r.Rates {
		rates[i] = opts.LineData{Value: rate}
	}
	line.SetXAxis(labels).AddSeries("growth", rates)

	page := components.NewPage()
	page.AddCharts(bar, line)
	return page.Render(w)
}

func (r *GrowthReport) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if err := r.RenderChart(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
