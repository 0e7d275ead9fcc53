package metrics

import (
	"regexp"
	"strconv"
)

// Condition es un predicado de comparación ya validado: se parsea una sola
// vez en el borde y nunca se re-parsea aguas abajo.
type Condition struct {
	Op        string
	Threshold float64
}

var condRe = regexp.MustCompile(`^\s*(>=|<=|>|<|==|=)\s*(\d+(\.\d+)?)\s*$`)

// ParseCondition acepta expresiones tipo "> 100" o "<=2.5". Entrada
// malformada devuelve ok=false; el caller ignora ese filtro y avisa al
// usuario (fail-open). El string vacío no llega aquí: vacío = sin filtro.
func ParseCondition(s string) (Condition, bool) {
	m := condRe.FindStringSubmatch(s)
	if m == nil {
		return Condition{}, false
	}
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Condition{}, false
	}
	op := m[1]
	if op == "=" {
		op = "=="
	}
	return Condition{Op: op, Threshold: v}, true
}

func (c Condition) Match(v float64) bool {
	switch c.Op {
	case ">":
		return v > c.Threshold
	case ">=":
		return v >= c.Threshold
	case "<":
		return v < c.Threshold
	case "<=":
		return v <= c.Threshold
	case "==":
		return v == c.Threshold
	}
	return false
}
