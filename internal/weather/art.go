package weather

import (
	"strings"
	"unicode/utf8"
)

// ASCII art blocks for weather conditions, keyed by pattern name.
var artPatterns = map[string][]string{
	"clear_day":         {`    \   |   /    `, `     .-.-.-.     `, `  .- (  ☀️  ) -. `, `     '-'-'-'     `, `    /   |   \    `},
	"clear_night":       {`     *   *       `, `   *             `, `       🌙        `, `   *        *    `, `     *   *       `},
	"few_clouds_day":    {`    \  |  /      `, ` .-.  ☀️  .-.    `, `(   ☁️☁️☁️   )   `, ` '-'     '-'     `, `                 `},
	"few_clouds_night":  {`  *   🌙    *   `, ` .-.      .-.   `, `(   ☁️☁️☁️   )  `, ` '-'     '-'    `, `   *        *   `},
	"scattered_clouds":  {`     .-.-.       `, `   ☁️(     )☁️  `, `  ( ☁️☁️☁️☁️ )  `, `   '-☁️☁️☁️-'   `, `     '-'-'       `},
	"broken_clouds":     {`   ☁️☁️☁️☁️☁️    `, ` ☁️☁️☁️☁️☁️☁️☁️  `, `☁️☁️☁️☁️☁️☁️☁️☁️ `, ` ☁️☁️☁️☁️☁️☁️☁️  `, `   ☁️☁️☁️☁️☁️    `},
	"shower_rain":       {`     .-.-.       `, `   ☁️(     )☁️  `, `  ( ☁️☁️☁️☁️ )  `, `   '☔☔☔☔☔'  `, `    💧💧💧💧     `},
	"rain_day":          {`    \  |  /      `, ` .-.  ☀️  .-.    `, `(   ☁️☁️☁️   )   `, `  '🌧️🌧️🌧️🌧️'  `, `   💧💧💧💧      `},
	"rain_night":        {`     .-.-.       `, `   ☁️(     )☁️  `, `  ( ☁️☁️☁️☁️ )  `, `  '🌧️🌧️🌧️🌧️'  `, `   💧💧💧💧      `},
	"thunderstorm":      {`   ☁️☁️☁️☁️☁️    `, ` ☁️☁️⛈️⛈️☁️☁️   `, `☁️⚡☁️☁️⚡☁️☁️   `, ` '🌧️⚡🌧️⚡🌧️'  `, `   💧⚡💧⚡💧    `},
	"snow":              {`     .-.-.       `, `   ☁️(     )☁️  `, `  ( ☁️☁️☁️☁️ )  `, `   '❄️❄️❄️❄️'   `, `    ❄️❄️❄️❄️     `},
	"mist":              {`  ≋≋≋≋≋≋≋≋≋≋≋≋   `, ` ≋≋≋≋≋≋≋≋≋≋≋≋≋≋  `, `≋≋≋≋≋≋≋≋≋≋≋≋≋≋≋≋ `, ` ≋≋≋≋≋≋≋≋≋≋≋≋≋≋  `, `  ≋≋≋≋≋≋≋≋≋≋≋≋   `},
	"default":           {`     ????        `, `   ????????      `, ` ????????????    `, `   ????????      `, `     ????        `},
}

// iconPatterns maps OpenWeatherMap icon codes to art patterns.
var iconPatterns = map[string]string{
	"01d": "clear_day",
	"01n": "clear_night",
	"02d": "few_clouds_day",
	"02n": "few_clouds_night",
	"03d": "scattered_clouds",
	"03n": "scattered_clouds",
	"04d": "broken_clouds",
	"04n": "broken_clouds",
	"09d": "shower_rain",
	"09n": "shower_rain",
	"10d": "rain_day",
	"10n": "rain_night",
	"11d": "thunderstorm",
	"11n": "thunderstorm",
	"13d": "snow",
	"13n": "snow",
	"50d": "mist",
	"50n": "mist",
}

// ArtFor returns the ASCII art block for an OpenWeatherMap icon code.
// Unknown codes get the default block.
func ArtFor(icon string) []string {
	if pattern, ok := iconPatterns[icon]; ok {
		return artPatterns[pattern]
	}
	return artPatterns["default"]
}

// FormatWithArt lays out the report text on the left and the condition art
// on the right, separated by a vertical bar.
func FormatWithArt(icon, text string) string {
	artLines := ArtFor(icon)
	textLines := strings.Split(strings.TrimSpace(text), "\n")

	maxLines := len(artLines)
	if len(textLines) > maxLines {
		maxLines = len(textLines)
	}
	for len(artLines) < maxLines {
		artLines = append(artLines, "")
	}
	for len(textLines) < maxLines {
		textLines = append(textLines, "")
	}

	// Pad by rune count: report lines carry multi-byte characters (°C).
	maxTextWidth := 0
	for _, line := range textLines {
		if w := utf8.RuneCountInString(line); w > maxTextWidth {
			maxTextWidth = w
		}
	}

	combined := make([]string, 0, maxLines)
	for i := 0; i < maxLines; i++ {
		padded := textLines[i] + strings.Repeat(" ", maxTextWidth-utf8.RuneCountInString(textLines[i]))
		combined = append(combined, padded+" │ "+artLines[i])
	}

	return strings.Join(combined, "\n")
}

// FormatReport renders a full report with art.
func FormatReport(r *Report) string {
	return FormatWithArt(r.Icon, r.Text())
}
