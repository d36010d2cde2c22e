// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package stream

// Field identifies one of the independently streamed text channels.
type Field int

const (
	// None marks the absence of an active field.
	None Field = iota - 1
	ConceptTitle
	ConceptDetail
	StoreStory
	AdviceLocation
	AdviceHR
	AdviceMenu
	AdviceMarketing
	AdviceFunds

	numFields
)

// Fields lists every streamed field in display order.
var Fields = []Field{
	ConceptTitle, ConceptDetail, StoreStory,
	AdviceLocation, AdviceHR, AdviceMenu, AdviceMarketing, AdviceFunds,
}

var fieldNames = [numFields]string{
	ConceptTitle:    "concept_title",
	ConceptDetail:   "concept_detail",
	StoreStory:      "store_story",
	AdviceLocation:  "advice_location",
	AdviceHR:        "advice_hr",
	AdviceMenu:      "advice_menu",
	AdviceMarketing: "advice_marketing",
	AdviceFunds:     "advice_funds",
}

var fieldByEvent = func() map[string]Field {
	m := make(map[string]Field, numFields)
	for _, f := range Fields {
		m[f.EventName()] = f
	}
	return m
}()

// String returns the field's wire name without the "_delta" suffix.
func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "none"
	}
	return fieldNames[f]
}

// EventName returns the SSE event type carrying deltas for f.
func (f Field) EventName() string {
	return f.String() + "_delta"
}

// FieldForEvent resolves an SSE event type to its field.
func FieldForEvent(event string) (Field, bool) {
	f, ok := fieldByEvent[event]
	return f, ok
}

const (
	// EventDone terminates the stream successfully.
	EventDone = "done"
	// EventError is a server-sent failure; it is handled like a transport error.
	EventError = "error"
)
