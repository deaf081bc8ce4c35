// File: internal/model/pager.go
package model

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPageNumber 讓 Offset 不會溢位，超出的頁碼只會查到空頁
	MaxPageNumber = 1_000_000
)

// Pager 分頁參數與結果，每次查詢後由 SetRecordCount 重新計算頁數
type Pager struct {
	PageNumber  int `json:"pageNumber"`
	PageSize    int `json:"pageSize"`
	PageCount   int `json:"pageCount"`
	RecordCount int `json:"recordCount"`
}

// NewPager 修正非法的頁碼與每頁筆數
func NewPager(pageNumber, pageSize int) *Pager {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > MaxPageNumber {
		pageNumber = MaxPageNumber
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return &Pager{PageNumber: pageNumber, PageSize: pageSize}
}

func (p *Pager) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

func (p *Pager) SetRecordCount(n int) {
	p.RecordCount = n
	p.PageCount = (n + p.PageSize - 1) / p.PageSize
}
