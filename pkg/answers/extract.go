package answers

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// SentinelNotFound is how agents signal "no answer in the documents".
const SentinelNotFound = "<<ANSWER_NOT_FOUND>>"

// ErrNoJSON is returned when a response contains neither the sentinel
// nor a parseable JSON object.
var ErrNoJSON = errors.New("no JSON object found in response")

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)```")

// ExtractJSON pulls the answer payload out of a free-form agent
// response. Precedence: the not-found sentinel, then a fenced ```json
// block, then the first well-formed JSON object in the text. Returns
// either SentinelNotFound or a raw JSON string.
func ExtractJSON(response string) (string, error) {
	if strings.Contains(response, SentinelNotFound) {
		return SentinelNotFound, nil
	}

	if m := fencedJSON.FindStringSubmatch(response); m != nil {
		candidate := strings.TrimSpace(m[1])
		if json.Valid([]byte(candidate)) {
			return candidate, nil
		}
	}

	if obj := firstJSONObject(response); obj != "" {
		return obj, nil
	}
	return "", ErrNoJSON
}

// firstJSONObject returns the first balanced, well-formed JSON object in
// the text, or "".
func firstJSONObject(text string) string {
	for start := 0; ; {
		idx := strings.IndexByte(text[start:], '{')
		if idx < 0 {
			return ""
		}
		start += idx

		dec := json.NewDecoder(strings.NewReader(text[start:]))
		var raw json.RawMessage
		if err := dec.Decode(&raw); err == nil && len(raw) > 0 && raw[0] == '{' {
			return string(raw)
		}
		start++
	}
}

// ParsePayload decodes and validates an extracted payload. The sentinel
// decodes to an empty answer_found=false set.
func ParsePayload(extracted string) (*AnswerSetPayload, error) {
	if extracted == SentinelNotFound {
		return &AnswerSetPayload{AnswerFound: false}, nil
	}
	var payload AnswerSetPayload
	if err := json.Unmarshal([]byte(extracted), &payload); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return &payload, nil
}
