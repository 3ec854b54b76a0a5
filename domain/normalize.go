package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The metadata source mixes PascalCase and camelCase field names, and spells
// its movie identifier in a convention of its own. Canonical keys are
// first-letter-capitalized; the identifier is mapped by an explicit
// override, never by the generic casing rule.
const (
	externalIDSourceKey = "imdbID"

	KeyTitle      = "Title"
	KeyYear       = "Year"
	KeyExternalID = "ImdbID"
)

// NormalizePayload rewrites every key of a raw source payload into the
// canonical casing and applies the identifier override. Values are carried
// through untouched; no key is dropped here, so the step is lossless.
func NormalizePayload(raw map[string]interface{}) map[string]interface{} {
	normalized := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		if key == "" || key == externalIDSourceKey {
			continue
		}
		normalized[capitalizeFirst(key)] = value
	}
	if id, ok := raw[externalIDSourceKey]; ok {
		normalized[KeyExternalID] = id
	}
	return normalized
}

// MovieFromPayload validates a normalized payload into a Movie. A payload
// without a title is rejected with ErrInvalidRequest. Unknown keys are
// dropped silently so additions on the source side do not break ingestion.
// The record gets a fresh id and creation time; callers overwrite those when
// reconciling against an existing record.
func MovieFromPayload(payload map[string]interface{}, fullDetail bool) (*Movie, error) {
	title := stringField(payload, KeyTitle)
	if title == "" {
		return nil, fmt.Errorf("%w: missing required field %q", ErrInvalidRequest, KeyTitle)
	}

	movie := &Movie{
		ID:            uuid.NewString(),
		Title:         title,
		TitleLower:    TitleKey(title),
		Year:          yearField(payload, KeyYear),
		ImdbID:        stringField(payload, KeyExternalID),
		Rated:         stringField(payload, "Rated"),
		Released:      stringField(payload, "Released"),
		Runtime:       stringField(payload, "Runtime"),
		Genre:         stringField(payload, "Genre"),
		Director:      stringField(payload, "Director"),
		Writer:        stringField(payload, "Writer"),
		Actors:        stringField(payload, "Actors"),
		Plot:          stringField(payload, "Plot"),
		Language:      stringField(payload, "Language"),
		Country:       stringField(payload, "Country"),
		Awards:        stringField(payload, "Awards"),
		Poster:        stringField(payload, "Poster"),
		Metascore:     stringField(payload, "Metascore"),
		ImdbRating:    stringField(payload, "ImdbRating"),
		ImdbVotes:     stringField(payload, "ImdbVotes"),
		Type:          stringField(payload, "Type"),
		DVD:           stringField(payload, "DVD"),
		BoxOffice:     stringField(payload, "BoxOffice"),
		Production:    stringField(payload, "Production"),
		Website:       stringField(payload, "Website"),
		HasFullDetail: fullDetail,
		CreatedAt:     primitive.NewDateTimeFromTime(time.Now().UTC()),
	}
	return movie, nil
}

func capitalizeFirst(key string) string {
	runes := []rune(key)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func stringField(payload map[string]interface{}, key string) string {
	value, ok := payload[key]
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}

// yearField accepts the source's year both as a number and as a string.
// Strings like "1999–2003" keep only the leading digits; anything else
// leaves the year unset.
func yearField(payload map[string]interface{}, key string) int {
	switch value := payload[key].(type) {
	case int:
		return value
	case float64:
		return int(value)
	case string:
		digits := value
		if idx := strings.IndexFunc(value, func(r rune) bool { return r < '0' || r > '9' }); idx >= 0 {
			digits = value[:idx]
		}
		year, err := strconv.Atoi(digits)
		if err != nil {
			return 0
		}
		return year
	default:
		return 0
	}
}
