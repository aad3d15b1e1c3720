package safejson

// defaultTimeLayouts are the built-in layouts GetTime falls back to,
// ISO-8601 forms first. The two literal-Z layouts carry no zone
// directive, so matches come back in UTC.
var defaultTimeLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00", // ISO-8601 with milliseconds and offset
	"2006-01-02T15:04:05Z07:00",     // ISO-8601 with seconds and offset
	"2006-01-02T15:04:05.000Z",      // ISO-8601 with milliseconds, UTC (Zulu)
	"2006-01-02T15:04:05Z",          // ISO-8601 with seconds, UTC (Zulu)
	"2006-01-02",                    // ISO-8601 date only
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}
