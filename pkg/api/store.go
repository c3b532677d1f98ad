package api

import "time"

// StoreInfo описание хранилища (ответ meta и createStore)
type StoreInfo struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Tab       string    `json:"tab"`
	Header    []string  `json:"header"`
	Tabs      []string  `json:"tabs,omitempty"`
	RowCount  int       `json:"row_count"`
}

// StoreList ответ listStores
type StoreList struct {
	Stores []StoreInfo `json:"stores"`
}

// RowsPayload строки данных без заголовка (getRows, appendRows)
type RowsPayload struct {
	// Offset число строк, которое должно быть в хранилище до appendRows.
	// Повтор уже записанной пачки подтверждается с Appended 0.
	Offset *int       `json:"offset,omitempty"`
	Rows   [][]string `json:"rows"`
}

// HeaderPayload строка заголовка (setHeader)
type HeaderPayload struct {
	Header []string `json:"header"`
}

// CreateStoreRequest тело createStore
type CreateStoreRequest struct {
	Name   string   `json:"name"`
	Tab    string   `json:"tab,omitempty"`
	Header []string `json:"header,omitempty"`
}

// ResponseRow одна строка ответа на форму (appendResponse).
// Cells уже упорядочены по колонкам после системного префикса.
type ResponseRow struct {
	SubmittedAt time.Time `json:"submitted_at"`
	FormID      string    `json:"form_id"`
	IP          string    `json:"ip,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`
	Cells       []string  `json:"cells"`
}

// AppendResult ответ операций добавления строк
type AppendResult struct {
	Appended int `json:"appended"`
	RowCount int `json:"row_count"`
}
