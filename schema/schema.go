package schema

import (
	"maps"
	"slices"
	"time"

	"github.com/ONSdigital/dp-tm1-tools/generator"
	"github.com/ONSdigital/dp-tm1-tools/models"
)

// Sample object names
const (
	CurrencyFrom        = "TM1py Currency From"
	CurrencyTo          = "TM1py Currency To"
	Date                = "TM1py Date"
	FXRatesMeasure      = "TM1py FX Rates Measure"
	FXRates             = "TM1py FX Rates"
	Country             = "TM1py Country"
	Year                = "TM1py Year"
	Quarter             = "TM1py Quarter"
	EconMeasure         = "TM1py Econ Measure"
	Econ                = "TM1py Econ"
	FinancialInstrument = "TM1py Financial Instrument"
	StockPricesMeasure  = "TM1py Stock Prices Measure"
	StockPrices         = "TM1py Stock Prices"
)

var (
	// DateStart is the first date element of the Date dimension
	DateStart = time.Date(1940, time.January, 1, 0, 0, 0, 0, time.UTC)
	// DateEnd is the exclusive upper bound of the Date dimension
	DateEnd = time.Date(2041, time.January, 1, 0, 0, 0, 0, time.UTC)

	currencies  = []string{"EUR", "JPY", "CHF", "USD", "AUD"}
	countries   = []string{"USA", "AUS", "DEU"}
	instruments = []string{"IBM", "AAPL", "GOOG"}
	measures    = []string{"Open", "High", "Low", "Close", "Volume", "Adj. Open", "Adj. High", "Adj. Low", "Adj. Close", "Adj. Volume"}
)

// DateDimension returns the dimension holding one element per calendar day
// in [DateStart, DateEnd)
func DateDimension() models.Dimension {
	return models.NewDimension(Date, models.Numeric(generator.DateNames(DateStart, DateEnd)))
}

// FXRatesSample returns the dimensions and cube for the fx rates sample
func FXRatesSample() models.Schema {
	return models.Schema{
		Dimensions: []models.Dimension{
			models.NewDimension(CurrencyFrom, models.NumericElements(currencies...)),
			models.NewDimension(CurrencyTo, models.NumericElements(currencies...)),
			DateDimension(),
			models.NewDimension(FXRatesMeasure, models.NumericElements("Spot")),
		},
		Cubes: []models.Cube{
			{Name: FXRates, Dimensions: []string{CurrencyFrom, CurrencyTo, Date, FXRatesMeasure}},
		},
	}
}

// EconSample returns the dimensions and cube for the gdp sample
func EconSample() models.Schema {
	return models.Schema{
		Dimensions: []models.Dimension{
			models.NewDimension(Country, models.NumericElements(countries...)),
			models.NewDimension(Year, models.Numeric(generator.Years(1940, 2041))),
			models.NewDimension(Quarter, models.Numeric(generator.Quarters())),
			models.NewDimension(EconMeasure, models.NumericElements("GDP")),
		},
		Cubes: []models.Cube{
			{Name: Econ, Dimensions: []string{Country, Year, Quarter, EconMeasure}},
		},
	}
}

// StockPricesSample returns the dimensions and cube for the stock prices
// sample. The Date dimension is shared with the fx rates sample and is
// declared again so that the sample can be provisioned on its own.
func StockPricesSample() models.Schema {
	return models.Schema{
		Dimensions: []models.Dimension{
			models.NewDimension(FinancialInstrument, models.NumericElements(instruments...)),
			DateDimension(),
			models.NewDimension(StockPricesMeasure, models.NumericElements(measures...)),
		},
		Cubes: []models.Cube{
			{Name: StockPrices, Dimensions: []string{FinancialInstrument, Date, StockPricesMeasure}},
		},
	}
}

// Samples returns the complete load-data sample schema: every dimension
// once, followed by every cube
func Samples() models.Schema {
	var s models.Schema
	seen := map[string]bool{}
	for _, sample := range []models.Schema{FXRatesSample(), EconSample(), StockPricesSample()} {
		var fresh []models.Dimension
		for _, d := range sample.Dimensions {
			if !seen[d.Name] {
				seen[d.Name] = true
				fresh = append(fresh, d)
			}
		}
		s.Append(models.Schema{Dimensions: fresh, Cubes: sample.Cubes})
	}
	return s
}

var byName = map[string]func() models.Schema{
	"all":         Samples,
	"fxrates":     FXRatesSample,
	"econ":        EconSample,
	"stockprices": StockPricesSample,
}

// ByName returns the sample registered under name
func ByName(name string) (models.Schema, bool) {
	build, ok := byName[name]
	if !ok {
		return models.Schema{}, false
	}
	return build(), true
}

// Names returns the registered sample names, sorted
func Names() []string {
	return slices.Sorted(maps.Keys(byName))
}
