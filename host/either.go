package host

import "encoding/json"

// Either is a two-case tagged union, conventionally Left for failure and
// Right for success, matching the {"tag": "Right", "right": ...} |
// {"tag": "Left", "left": ...} JSON shape used at the host boundary.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left returns a Left-tagged Either carrying l.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right returns a Right-tagged Either carrying r.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// IsLeft reports whether e is Left-tagged.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether e is Right-tagged.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the Left payload and whether e is Left-tagged.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the Right payload and whether e is Right-tagged.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

type eitherWire[L, R any] struct {
	Tag   string `json:"tag"`
	Left  L      `json:"left,omitempty"`
	Right R      `json:"right,omitempty"`
}

// MarshalJSON encodes e as {"tag":"Right","right":...} or
// {"tag":"Left","left":...}.
func (e Either[L, R]) MarshalJSON() ([]byte, error) {
	if e.isRight {
		return json.Marshal(eitherWire[L, R]{Tag: "Right", Right: e.right})
	}
	return json.Marshal(eitherWire[L, R]{Tag: "Left", Left: e.left})
}

// UnmarshalJSON decodes the {"tag": "Right"|"Left", ...} shape produced by
// MarshalJSON.
func (e *Either[L, R]) UnmarshalJSON(data []byte) error {
	var wire eitherWire[L, R]
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	e.isRight = wire.Tag == "Right"
	e.left = wire.Left
	e.right = wire.Right
	return nil
}
