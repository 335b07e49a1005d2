package corpus

import (
	"encoding/json"

	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/symbolid"
)

// wireFormat is the JSON shape cmd/mrdocs-finalize reads and writes: a flat
// array of records plus the undocumented side table, mirroring the two
// inputs spec.md 6 says the extractor hands the core.
type wireFormat struct {
	Infos        []*info.Info   `json:"infos"`
	Undocumented []Undocumented `json:"undocumented,omitempty"`
}

// MarshalJSON renders the table as a flat, deterministically ordered record
// array — InfoSet's internal map and mutex are not meant to round-trip.
func (s *InfoSet) MarshalJSON() ([]byte, error) {
	w := wireFormat{Undocumented: s.UndocumentedSet()}
	s.Each(func(rec *info.Info) bool {
		w.Infos = append(w.Infos, rec)
		return true
	})
	return json.Marshal(w)
}

// UnmarshalJSON populates an InfoSet from the wire format. It is the
// moral equivalent of the extractor's population step: every record is
// inserted via Put (not Insert), since a JSON corpus file's own duplicate
// ids are the caller's bug, not a state this package needs to discover.
func (s *InfoSet) UnmarshalJSON(data []byte) error {
	var w wireFormat
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.byID = make(map[symbolid.ID]*info.Info, len(w.Infos))
	s.undocumented = make(map[symbolid.ID]Undocumented, len(w.Undocumented))
	for _, rec := range w.Infos {
		s.Put(rec)
	}
	for _, u := range w.Undocumented {
		s.MarkUndocumented(u)
	}
	return nil
}
