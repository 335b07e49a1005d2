package symbolid

import "encoding/json"

// MarshalJSON renders id as a hex string, matching String/FromHex, so a
// corpus round-trips through JSON the same way the CLI's corpus file does.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON parses the hex string String produces.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := FromHex(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
