package domain

// EntryKind discrimina uma venda direta de um abono (pagamento parcial)
type EntryKind string

const (
	EntryKindSale    EntryKind = "sale"
	EntryKindPayment EntryKind = "payment"
)

// FallbackCategory é exibida quando a venda não possui categoria
const FallbackCategory = "—"

// SaleRecord é o formato canônico de uma venda ou abono. A normalização dos
// campos legados (amountCOP vs quantity×unitPriceCOP, cantidad, valor)
// acontece uma única vez, na borda do repositório; ninguém depois daqui
// precisa tratar formatos alternativos.
type SaleRecord struct {
	ID            string            `json:"id"`
	Kind          EntryKind         `json:"kind"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	Amount        int64             `json:"amount"`
	Quantity      float64           `json:"quantity"`
	CategoryID    string            `json:"categoryId,omitempty"`
	CategoryName  string            `json:"categoryName,omitempty"`
	Selections    map[string]string `json:"selections,omitempty"`
	VariantKey    string            `json:"variantKey,omitempty"`
}

// IsValid indica se a venda participa das agregações de receita.
// Vendas com valor zerado ou negativo são ignoradas em todo o pipeline.
func (s *SaleRecord) IsValid() bool {
	return s != nil && s.Amount > 0
}

// IsPayment indica se o registro é um abono
func (s *SaleRecord) IsPayment() bool {
	return s.Kind == EntryKindPayment
}

// Category resolve o rótulo de categoria da venda: nome, depois ID,
// depois o marcador de ausência
func (s *SaleRecord) Category() string {
	if s.CategoryName != "" {
		return s.CategoryName
	}
	if s.CategoryID != "" {
		return s.CategoryID
	}
	return FallbackCategory
}

// ResolveAmount aplica a prioridade de resolução do valor de uma venda:
// valor explícito, senão quantidade × preço unitário, senão zero
func ResolveAmount(explicit int64, quantity float64, unitPrice int64) int64 {
	if explicit > 0 {
		return explicit
	}
	if quantity > 0 && unitPrice > 0 {
		return int64(quantity*float64(unitPrice) + 0.5)
	}
	return 0
}

// NormalizeQuantity devolve a quantidade efetiva de uma venda (1 quando
// ausente ou não positiva)
func NormalizeQuantity(quantity float64) float64 {
	if quantity <= 0 {
		return 1
	}
	return quantity
}
