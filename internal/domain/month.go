package domain

// RawDayRecord agrupa a atividade bruta de um dia de calendário. É montado
// transitoriamente pelo range fetcher a partir das linhas individuais do
// banco; nunca é persistido fora do cache mensal.
type RawDayRecord struct {
	Date     string           `json:"date"`
	Sales    []*SaleRecord    `json:"sales"`
	Expenses []*ExpenseRecord `json:"expenses"`
}

// DatedSale associa um registro canônico de venda ao dia em que ocorreu.
// É o formato devolvido pelos repositórios antes do agrupamento por dia.
type DatedSale struct {
	Day  string
	Sale *SaleRecord
}

// DatedExpense associa uma despesa diária ao seu dia
type DatedExpense struct {
	Day     string
	Expense *ExpenseRecord
}

// MonthMeta é o carimbo de versão autoritativo de um mês, mantido pelo
// registro de versões (analytics_meta). A versão é incrementada a cada
// escrita nos dados daquele mês.
type MonthMeta struct {
	YM      string `json:"ym"`
	Version int64  `json:"version"`
}

// MonthCachePayload embrulha os dados brutos cacheados de um mês
type MonthCachePayload struct {
	Raw []*RawDayRecord `json:"raw"`
}

// MonthCacheEntry é o valor serializado no cache durável, chaveado por
// "cm:month:{YYYY-MM}". Uma entrada só é válida se a versão bater com o
// registro de versões; o mês corrente nunca é cacheado.
type MonthCacheEntry struct {
	Version  int64             `json:"version"`
	Payload  MonthCachePayload `json:"payload"`
	CachedAt int64             `json:"cachedAt"`
}
