// ABOUTME: easyjson marshalers for the persisted history snapshot
// ABOUTME: Wire form: [{"first":3,"op":"add","second":4,"result":7}, ...]

package engine

import (
	"fmt"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// entryList is the easyjson-serializable form of a history snapshot.
type entryList []HistoryEntry

// MarshalHistoryEntries encodes entries as the persisted JSON snapshot.
func MarshalHistoryEntries(entries []HistoryEntry) ([]byte, error) {
	return easyjson.Marshal(entryList(entries))
}

// UnmarshalHistoryEntries decodes a persisted snapshot and validates every entry.
func UnmarshalHistoryEntries(data []byte) ([]HistoryEntry, error) {
	var l entryList
	if err := easyjson.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decoding history: %w", err)
	}
	for i, e := range l {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("decoding history entry %d: %w", i, err)
		}
	}
	return []HistoryEntry(l), nil
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (l entryList) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('[')
	for i, e := range l {
		if i > 0 {
			w.RawByte(',')
		}
		e.MarshalEasyJSON(w)
	}
	w.RawByte(']')
}

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (l *entryList) UnmarshalEasyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		*l = nil
		return
	}
	in.Delim('[')
	if *l == nil {
		*l = make(entryList, 0, HistoryCapacity)
	} else {
		*l = (*l)[:0]
	}
	for !in.IsDelim(']') {
		var e HistoryEntry
		e.UnmarshalEasyJSON(in)
		*l = append(*l, e)
		in.WantComma()
	}
	in.Delim(']')
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (e HistoryEntry) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"first":`)
	w.Float64(e.FirstOperand)
	w.RawString(`,"op":`)
	w.String(e.Operation.String())
	w.RawString(`,"second":`)
	w.Float64(e.SecondOperand)
	if e.Err != ErrNone {
		w.RawString(`,"error":`)
		w.String(e.Err.String())
	} else {
		w.RawString(`,"result":`)
		w.Float64(e.Result)
	}
	w.RawByte('}')
}

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (e *HistoryEntry) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "first":
			e.FirstOperand = in.Float64()
		case "op":
			op, err := ParseOperation(in.String())
			if err != nil {
				in.AddError(err)
			}
			e.Operation = op
		case "second":
			e.SecondOperand = in.Float64()
		case "result":
			e.Result = in.Float64()
		case "error":
			k, err := parseErrorKind(in.String())
			if err != nil {
				in.AddError(err)
			}
			e.Err = k
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}
