package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/singularity-chess-go/internal/chess"
)

// JSONDestinations is one origin and its destinations.
type JSONDestinations struct {
	From  string   `json:"from"`
	Piece string   `json:"piece"`
	To    []string `json:"to"`
}

// JSONPosition describes a position and the destinations generated in it.
type JSONPosition struct {
	FEN          string             `json:"fen"`
	ToMove       string             `json:"toMove"`
	Destinations []JSONDestinations `json:"destinations"`
	Count        int                `json:"count"`
	Moves        []string           `json:"moves,omitempty"`
}

// PositionToJSON converts generated destinations to their JSON form.
func PositionToJSON(fen string, toMove chess.Colour, all []chess.Destinations) *JSONPosition {
	jp := &JSONPosition{
		FEN:          fen,
		ToMove:       toMove.String(),
		Destinations: make([]JSONDestinations, 0, len(all)),
	}
	for _, d := range all {
		jd := JSONDestinations{
			From:  d.Origin.String(),
			Piece: string(d.Piece.Letter()),
			To:    make([]string, 0, len(d.Targets)),
		}
		for _, sq := range d.Targets {
			jd.To = append(jd.To, sq.String())
		}
		jp.Count += len(d.Targets)
		jp.Destinations = append(jp.Destinations, jd)
	}
	return jp
}

// WriteJSON encodes v with two-space indentation.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
