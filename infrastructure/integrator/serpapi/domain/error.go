package serpapidomain

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorResponse representa o corpo de erro retornado pelo SerpAPI
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProviderError é uma falha reportada pelo SerpAPI (status não-2xx ou corpo
// de erro). Carrega o status e a mensagem originais do provedor.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("serpapi: %s (status %d)", e.Message, e.StatusCode)
}

// IsInvalidLocation verifica se o erro indica uma localização inválida.
// O provedor sinaliza esse caso apenas pelo texto da mensagem.
func (e *ProviderError) IsInvalidLocation() bool {
	return strings.Contains(strings.ToLower(e.Message), "location")
}

// IsInvalidLocation verifica se um erro qualquer é o sub-tipo de localização
// inválida. Esse erro encerra a paginação da consulta sem abortar o lote.
func IsInvalidLocation(err error) bool {
	var provErr *ProviderError
	return errors.As(err, &provErr) && provErr.IsInvalidLocation()
}

// IsTimeout verifica se a falha foi estouro do tempo limite por página.
// O chamador trata timeout como página sem resultados.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
