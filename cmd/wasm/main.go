//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/ecclab/ecgroup/pkg/ecgroup"
)

// Registered curves, keyed by the name given at construction time.
var curves = make(map[string]*ecgroup.Weierstrass)

func main() {
	c := make(chan struct{})

	fmt.Println("Go ecgroup WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECGroup", map[string]interface{}{
		"NewCurve":   js.FuncOf(NewCurve),
		"IsOnCurve":  js.FuncOf(IsOnCurve),
		"Add":        js.FuncOf(Add),
		"ScalarMult": js.FuncOf(ScalarMult),
	})

	<-c
}

// curveInput mirrors the Weierstrass constructor, with every big integer as
// a base-10 string.
type curveInput struct {
	Name string `json:"name"`
	A    string `json:"a"`
	B    string `json:"b"`
	P    string `json:"p"`
	Gx   string `json:"gx"`
	Gy   string `json:"gy"`
	N    string `json:"n"`
}

// NewCurve registers a curve under a caller-chosen name.
// Arguments:
// 0: JSON string of curve parameters
// Returns:
// "ok" or an error string
func NewCurve(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	var input curveInput
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	nums := make([]*big.Int, 6)
	for i, s := range []string{input.A, input.B, input.P, input.Gx, input.Gy, input.N} {
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return fmt.Sprintf("error: invalid integer %q", s)
		}
		nums[i] = n
	}

	curves[input.Name] = ecgroup.NewWeierstrass(
		nums[0], nums[1], nums[2], nums[3], nums[4], nums[5])
	return "ok"
}

// IsOnCurve checks point membership.
// Arguments:
// 0: curve name, 1: x (base-10), 2: y (base-10)
func IsOnCurve(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curve, x, y)"
	}

	curve, ok := curves[args[0].String()]
	if !ok {
		return fmt.Sprintf("error: unknown curve %q", args[0].String())
	}

	p, errStr := parsePoint(args[1].String(), args[2].String())
	if errStr != "" {
		return errStr
	}
	return curve.IsOnCurve(p)
}

// Add computes the group-law sum of two points.
// Arguments:
// 0: curve name, 1: x1, 2: y1, 3: x2, 4: y2 (base-10; "" for the identity)
// Returns:
// JSON {"x": ..., "y": ..., "identity": bool} or an error string
func Add(this js.Value, args []js.Value) interface{} {
	if len(args) != 5 {
		return "error: expected 5 arguments (curve, x1, y1, x2, y2)"
	}

	curve, ok := curves[args[0].String()]
	if !ok {
		return fmt.Sprintf("error: unknown curve %q", args[0].String())
	}

	p1, errStr := parsePoint(args[1].String(), args[2].String())
	if errStr != "" {
		return errStr
	}
	p2, errStr := parsePoint(args[3].String(), args[4].String())
	if errStr != "" {
		return errStr
	}

	sum, err := curve.Add(p1, p2)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshalPoint(sum)
}

// ScalarMult computes k times a point.
// Arguments:
// 0: curve name, 1: x, 2: y, 3: k (base-10, may be negative)
func ScalarMult(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return "error: expected 4 arguments (curve, x, y, k)"
	}

	curve, ok := curves[args[0].String()]
	if !ok {
		return fmt.Sprintf("error: unknown curve %q", args[0].String())
	}

	p, errStr := parsePoint(args[1].String(), args[2].String())
	if errStr != "" {
		return errStr
	}

	k, ok := new(big.Int).SetString(args[3].String(), 10)
	if !ok {
		return fmt.Sprintf("error: invalid scalar %q", args[3].String())
	}

	res, err := curve.ScalarMult(p, k)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshalPoint(res)
}

func parsePoint(xs, ys string) (ecgroup.Point, string) {
	if xs == "" && ys == "" {
		return ecgroup.Identity(), ""
	}

	x, ok := new(big.Int).SetString(xs, 10)
	if !ok {
		return ecgroup.Point{}, fmt.Sprintf("error: invalid coordinate %q", xs)
	}
	y, ok := new(big.Int).SetString(ys, 10)
	if !ok {
		return ecgroup.Point{}, fmt.Sprintf("error: invalid coordinate %q", ys)
	}
	return ecgroup.NewPoint(x, y), ""
}

func marshalPoint(p ecgroup.Point) string {
	out := map[string]interface{}{
		"x":        p.X().String(),
		"y":        p.Y().String(),
		"identity": p.IsIdentity(),
	}
	b, _ := json.Marshal(out)
	return string(b)
}
