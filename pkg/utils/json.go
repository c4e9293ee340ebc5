package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJson formata qualquer valor (ou []byte já serializado) como JSON
// indentado para logs de depuração. Erros de serialização produzem string
// vazia em vez de falhar o chamador.
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		marshaled, err := json.Marshal(in)
		if err != nil {
			return ""
		}
		raw = marshaled
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		return ""
	}

	return out.String()
}
