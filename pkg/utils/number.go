package utils

import (
	"math"
	"strconv"
)

// ToInt converte um valor heterogêneo da API do Meta em inteiro.
// Aceita escalar, string numérica ou lista de ações ([{action_type, value}]).
// Listas são somadas item a item; valores não conversíveis degradam para o default.
func ToInt(value any, defaultValue int) int {
	switch v := value.(type) {
	case nil:
		return defaultValue
	case []any:
		total := 0
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok {
				total += ToInt(obj["value"], 0)
				continue
			}
			total += scalarToInt(item, 0)
		}
		return total
	default:
		return scalarToInt(value, defaultValue)
	}
}

// ToFloat converte um valor heterogêneo da API do Meta em float64,
// com as mesmas regras de agregação de ToInt.
func ToFloat(value any, defaultValue float64) float64 {
	switch v := value.(type) {
	case nil:
		return defaultValue
	case []any:
		total := 0.0
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok {
				total += ToFloat(obj["value"], 0)
				continue
			}
			total += scalarToFloat(item, 0)
		}
		return total
	default:
		return scalarToFloat(value, defaultValue)
	}
}

func scalarToInt(value any, defaultValue int) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return defaultValue
		}
		return n
	default:
		return defaultValue
	}
}

func scalarToFloat(value any, defaultValue float64) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return defaultValue
		}
		return f
	default:
		return defaultValue
	}
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
