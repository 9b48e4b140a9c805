package clierrors

import (
	"encoding/json"
	"fmt"
	"io"
)

// Códigos de erro do CLI
const (
	// Erros de validação (entrada do usuário, detectados antes de qualquer chamada remota)
	ErrInvalidDateRange = "VAL_001" // Intervalo de datas inválido
	ErrInvalidArgument  = "VAL_002" // Argumento ou flag inválida
	ErrUnknownCampaign  = "VAL_003" // Campanha não encontrada na descoberta
	ErrInvalidEnum      = "VAL_004" // Valor fora do conjunto permitido

	// Erros de serviço externo (API do WB Promote)
	ErrExternalService = "EXT_001" // Falha em chamada remota
	ErrDecodeResponse  = "EXT_002" // Resposta remota não pôde ser decodificada

	// Erros internos
	ErrInternal = "SRV_001" // Erro interno inesperado
)

// Mapeamento de códigos de erro para códigos de saída do processo
var exitCodeMap = map[string]int{
	ErrInvalidDateRange: 1,
	ErrInvalidArgument:  1,
	ErrUnknownCampaign:  1,
	ErrInvalidEnum:      1,
	ErrExternalService:  2,
	ErrDecodeResponse:   2,
	ErrInternal:         3,
}

// CLIError é o erro estruturado exposto ao usuário do CLI
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *CLIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ExitCode retorna o código de saída do processo para este erro
func (e *CLIError) ExitCode() int {
	if code, ok := exitCodeMap[e.Code]; ok {
		return code
	}
	return 3
}

// New cria um erro estruturado com o código informado
func New(code, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// Newf cria um erro estruturado com mensagem formatada
func Newf(code, format string, args ...any) *CLIError {
	return &CLIError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validation cria um erro de validação genérico
func Validation(message string) *CLIError {
	return New(ErrInvalidArgument, message)
}

// External embrulha uma falha de chamada remota
func External(err error) *CLIError {
	return &CLIError{Code: ErrExternalService, Message: err.Error()}
}

// IsValidation indica se o erro é de validação (não retryable)
func IsValidation(err error) bool {
	cliErr, ok := err.(*CLIError)
	if !ok {
		return false
	}
	return exitCodeMap[cliErr.Code] == 1
}

// Render escreve o objeto de erro estruturado como JSON
func Render(w io.Writer, err error) int {
	cliErr, ok := err.(*CLIError)
	if !ok {
		cliErr = &CLIError{Code: ErrInternal, Message: err.Error()}
	}

	payload := map[string]any{"error": cliErr}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if encodeErr := enc.Encode(payload); encodeErr != nil {
		fmt.Fprintf(w, "%s\n", cliErr.Error())
	}

	return cliErr.ExitCode()
}
