package model

type Transaction struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Amount    int64  `json:"amount"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type PurchaseGoldRequest struct {
	Amount int64 `json:"amount"`
}

type PurchaseGoldResponse struct {
	Gold int64 `json:"gold"`
}

type CashOutGoldRequest struct{}

type CashOutGoldResponse struct {
	Payout int64 `json:"payout"`
	Gold   int64 `json:"gold"`
}

type GetTransactionsRequest struct {
	Type   string `json:"type" form:"type"`
	Offset int    `json:"offset" form:"offset"`
	Limit  int    `json:"limit" form:"limit"`
}

type GetTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	Gold         int64         `json:"gold"`
}
