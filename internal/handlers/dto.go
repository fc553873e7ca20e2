package handlers

import (
	"math"

	"github.com/tidwall/gjson"
)

type ConsoleRequest struct {
	Name string `json:"name" example:"Nintendo"`
}

func consoleRequestFrom(doc gjson.Result) ConsoleRequest {
	return ConsoleRequest{Name: doc.Get("name").String()}
}

type GameRequest struct {
	Title     string `json:"title" example:"Zelda"`
	ConsoleID uint   `json:"consoleId" example:"1"`
}

func gameRequestFrom(doc gjson.Result) GameRequest {
	return GameRequest{
		Title:     doc.Get("title").String(),
		ConsoleID: clampedUint(doc.Get("consoleId")),
	}
}

func clampedUint(v gjson.Result) uint {
	if v.Num >= math.MaxUint {
		return math.MaxUint
	}
	return uint(v.Uint())
}
