package tools

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
)

const weatherDescription = "Get the current weather for a location. Returns temperature, conditions, and humidity."

type weatherReading struct {
	Temp      int
	Condition string
	Humidity  int
}

// knownWeather holds fixed readings for a handful of cities, keyed by
// lowercased name. Unknown locations get a randomized reading.
var knownWeather = map[string]weatherReading{
	"seattle":     {Temp: 52, Condition: "Rainy", Humidity: 85},
	"new york":    {Temp: 45, Condition: "Cloudy", Humidity: 60},
	"los angeles": {Temp: 72, Condition: "Sunny", Humidity: 40},
	"miami":       {Temp: 82, Condition: "Partly Cloudy", Humidity: 75},
	"chicago":     {Temp: 38, Condition: "Windy", Humidity: 55},
	"denver":      {Temp: 48, Condition: "Clear", Humidity: 30},
}

var randomConditions = []string{"Sunny", "Cloudy", "Rainy", "Clear"}

// GetWeather reports mock weather for a location. The location is echoed back
// with the caller's spelling; only the lookup is case-insensitive.
func GetWeather(ctx context.Context, location string) (string, error) {
	reading, ok := knownWeather[strings.ToLower(location)]
	if !ok {
		reading = weatherReading{
			Temp:      30 + rand.Intn(56), // 30..85
			Condition: randomConditions[rand.Intn(len(randomConditions))],
			Humidity:  30 + rand.Intn(61), // 30..90
		}
	}

	return fmt.Sprintf("Weather in %s: %d°F, %s, Humidity: %d%%",
		location, reading.Temp, reading.Condition, reading.Humidity), nil
}
