// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// PaymentMethod identifica a forma de pagamento de uma venda ou despesa
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// NormalizePaymentMethod reduz qualquer valor livre às duas formas suportadas.
// Qualquer valor diferente de "cash" cai no balde de transferência: essa é a
// única regra de bucketing usada em todo o pipeline.
func NormalizePaymentMethod(raw string) PaymentMethod {
	if raw == string(PaymentMethodCash) {
		return PaymentMethodCash
	}
	return PaymentMethodTransfer
}

// ParsePaymentMethod valida estritamente a forma de pagamento. Usado onde
// registros com valores desconhecidos devem ser descartados em vez de
// normalizados (despesas gerais).
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch PaymentMethod(raw) {
	case PaymentMethodCash, PaymentMethodTransfer:
		return PaymentMethod(raw), true
	}
	return "", false
}

// IsCash indica se o método pertence ao balde de dinheiro em espécie
func (p PaymentMethod) IsCash() bool {
	return p == PaymentMethodCash
}
