// Package cart implements the client-local order cart: a pure in-memory
// aggregation of chosen catalog items. It makes no network calls; callers
// persist it between page loads via Snapshot/Restore and submit its lines
// through the order API at checkout.
package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/XenomaCode/milla13-api/internal/models"
)

// Line is one cart entry: a product reference with a denormalized
// name/price snapshot and a positive quantity.
type Line struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Cart aggregates chosen products by id. The zero value is not usable;
// use New.
type Cart struct {
	lines map[string]*Line
	order []string // insertion order of product ids
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{lines: make(map[string]*Line)}
}

// Add puts one unit of the product into the cart. If the product is
// already present its quantity is incremented; the cart never holds two
// lines for the same product.
func (c *Cart) Add(p *models.Product) {
	if line, ok := c.lines[p.ID]; ok {
		line.Quantity++
		return
	}
	c.lines[p.ID] = &Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
	}
	c.order = append(c.order, p.ID)
}

// SetQuantity replaces the quantity of an existing line. Quantities below
// one are ignored: removal must go through Remove.
func (c *Cart) SetQuantity(productID string, n int) {
	if n < 1 {
		return
	}
	if line, ok := c.lines[productID]; ok {
		line.Quantity = n
	}
}

// Remove drops the line for the product entirely.
func (c *Cart) Remove(productID string) {
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Total is the sum of price times quantity over all lines, recomputed on
// every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Len is the number of distinct lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// OrderLines converts the cart contents into order line snapshots for
// submission.
func (c *Cart) OrderLines() []models.OrderLine {
	out := make([]models.OrderLine, 0, len(c.lines))
	for _, id := range c.order {
		line := c.lines[id]
		out = append(out, models.OrderLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}
	return out
}

// Clear empties the cart. Called after a successful order submission.
func (c *Cart) Clear() {
	c.lines = make(map[string]*Line)
	c.order = nil
}

// Snapshot serializes the cart to JSON so callers can persist it across
// sessions, mirroring the browser local-storage behavior.
func (c *Cart) Snapshot() ([]byte, error) {
	return json.Marshal(c.Lines())
}

// Restore replaces the cart contents from a previous Snapshot. Lines with
// non-positive quantities are discarded rather than resurrected, and
// lines repeating a product id merge their quantities so the cart never
// holds two lines for the same product.
func (c *Cart) Restore(data []byte) error {
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	c.Clear()
	for i := range lines {
		if lines[i].Quantity < 1 {
			continue
		}
		line := lines[i]
		if existing, ok := c.lines[line.ProductID]; ok {
			existing.Quantity += line.Quantity
			continue
		}
		c.lines[line.ProductID] = &line
		c.order = append(c.order, line.ProductID)
	}
	return nil
}
