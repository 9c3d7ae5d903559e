package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kreumat/nilbel-hackhaton-NAYS/models/venue"
)

// PlotHourlyOccupancy renders the venue's hourly occupancy averages as an
// HTML bar chart. series holds one value per hour of the operating window
// starting at openHour; currentHour is highlighted by name in the axis.
func PlotHourlyOccupancy(v *venue.Venue, series []int, openHour, currentHour int, w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("%s - Saatlik Doluluk", v.VenueName),
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    v.VenueName,
			Subtitle: "Haftalık ortalama doluluk (%)",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Max: 100,
		}),
	)

	labels := make([]string, 0, len(series))
	values := make([]opts.BarData, 0, len(series))
	for i, value := range series {
		hour := openHour + i
		label := fmt.Sprintf("%02d:00", hour)
		if hour == currentHour {
			label += " (şimdi)"
		}
		labels = append(labels, label)
		values = append(values, opts.BarData{Value: value})
	}

	bar.SetXAxis(labels).AddSeries("Doluluk", values,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{c}%",
		}),
	)

	return bar.Render(w)
}
