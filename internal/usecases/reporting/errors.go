package reporting

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// ErrStoreNotReady marca falhas transitórias do backing store (índice ou
// tabela ainda não provisionados). O range fetcher e o overlay de despesas
// gerais aplicam a mesma política: um mês com falha transitória degrada para
// um resultado vazio com warning; qualquer outra falha aborta o intervalo
// inteiro.
var ErrStoreNotReady = errors.New("backing store ainda não está pronto")

// Códigos do Postgres que indicam schema/índice ausente
var transientPqCodes = map[string]bool{
	"42P01": true, // undefined_table
	"42704": true, // undefined_object (índice inexistente)
}

// IsTransient classifica um erro de busca como transitório ou fatal.
// É a única política de tolerância a falha parcial do pipeline.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrStoreNotReady) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return transientPqCodes[string(pqErr.Code)]
	}

	return false
}
