package printing

import (
	"github.com/orgalaser/invoicing/internal/domain/printing"
	"github.com/shopspring/decimal"
)

// LooseDecimal reads numbers, numeric strings and null. Anything else reads as zero.
type LooseDecimal struct {
	decimal.Decimal
}

// UnmarshalJSON never fails; print requests are not validated
func (d *LooseDecimal) UnmarshalJSON(b []byte) error {
	var v decimal.Decimal
	if err := v.UnmarshalJSON(b); err != nil {
		v = decimal.Zero
	}
	d.Decimal = v
	return nil
}

// PrintItem is one line of a print request
type PrintItem struct {
	ItemDescription string       `json:"Item_Description"`
	Quantity        LooseDecimal `json:"Quantity"`
	Rate            LooseDecimal `json:"Rate"`
}

// PrintRequest is the freeform content of a printed invoice or quotation.
// Every field is optional.
type PrintRequest struct {
	DocumentType    string       `json:"Document_Type"`
	CustomerName    string       `json:"Customer_Name"`
	Address         string       `json:"Address"`
	TaxID           string       `json:"TAX_ID"`
	Items           []PrintItem  `json:"Items"`
	TotalAmount     LooseDecimal `json:"Total_Amount"`
	CustomerMobile  string       `json:"Customer_Mobile"`
	CustomerType    string       `json:"Customer_Type"`
	PurchasingOrder string       `json:"Purchasing_Order"`
	PaymentMethod   string       `json:"Payment_Method"`
	DiscountPrice   LooseDecimal `json:"Discount_Price"`
	AdvancePayment  LooseDecimal `json:"Advance_Payment"`
}

func (r PrintRequest) sheetInput() printing.SheetInput {
	items := make([]printing.SheetItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = printing.SheetItem{
			Description: item.ItemDescription,
			Quantity:    item.Quantity.Decimal,
			Rate:        item.Rate.Decimal,
		}
	}
	return printing.SheetInput{
		DocumentType:    r.DocumentType,
		CustomerName:    r.CustomerName,
		Address:         r.Address,
		TaxID:           r.TaxID,
		CustomerMobile:  r.CustomerMobile,
		CustomerType:    r.CustomerType,
		PurchasingOrder: r.PurchasingOrder,
		PaymentMethod:   r.PaymentMethod,
		Items:           items,
		TotalAmount:     r.TotalAmount.Decimal,
		DiscountPercent: r.DiscountPrice.Decimal,
		AdvancePayment:  r.AdvancePayment.Decimal,
	}
}

// Document is a rendered file ready to send
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}
