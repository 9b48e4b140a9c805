package output

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Emit escreve o documento de resultado como JSON em uma linha, ou indentado
// quando pretty é verdadeiro. Logs vão para stderr; stdout carrega só o
// documento, para que a saída seja canalizável.
func Emit(w io.Writer, document any, pretty bool) error {
	var payload []byte
	var err error

	if pretty {
		payload, err = json.MarshalIndent(document, "", "  ")
	} else {
		payload, err = json.Marshal(document)
	}
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o documento de saída")
	}

	if _, err := fmt.Fprintln(w, string(payload)); err != nil {
		return errors.Wrap(err, "erro ao escrever a saída")
	}

	return nil
}
