// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product_test

import (
	"github.com/taibuivan/traders/internal/product"
	"github.com/taibuivan/traders/pkg/money"
)

func item(id int, slug, name, category, price, vendor string, rating float64, inStock, featured bool, delivery string, tags ...string) *product.Product {
	return &product.Product{
		ID:           id,
		Slug:         slug,
		Name:         name,
		Category:     category,
		Price:        money.MustParseINR(price),
		PriceDisplay: price,
		Vendor:       vendor,
		Rating:       rating,
		InStock:      inStock,
		Featured:     featured,
		Delivery:     delivery,
		Description:  name + " for growing businesses.",
		Tags:         tags,
	}
}

func sampleProducts() []*product.Product {
	return []*product.Product{
		item(1, "enterprise-software-license", "Enterprise Software License", "Software", "₹99,999", "Tech Solutions Inc", 4.8, true, true, "Instant", "Popular"),
		item(2, "industrial-equipment-package", "Industrial Equipment Package", "Hardware", "₹2,49,999", "Industrial Suppliers Co.", 4.6, true, false, "3-5 Days", "Premium"),
		item(3, "business-consulting-package", "Business Consulting Package", "Services", "₹1,49,999", "ConsultPro Advisory", 4.9, true, true, "Custom", "Expert"),
		item(4, "executive-office-furniture-set", "Executive Office Furniture Set", "Furniture", "₹75,999", "Office Elegance", 4.5, false, false, "7-10 Days", "Luxury"),
		item(5, "marketing-automation-suite", "Marketing Automation Suite", "Software", "₹1,99,999", "MarketingPro AI", 4.7, true, true, "Instant", "AI"),
		item(6, "network-security-system", "Network Security System", "Hardware", "₹3,49,999", "SecureNet Solutions", 4.9, true, false, "5-7 Days", "Security"),
		item(7, "cloud-storage-solution", "Cloud Storage Solution", "Software", "₹49,999", "CloudTech Systems", 4.8, true, true, "Instant", "Cloud"),
		item(8, "professional-workshop-tools", "Professional Workshop Tools", "Hardware", "₹1,29,999", "ToolMaster Pro", 4.4, true, false, "2-4 Days", "Durable"),
	}
}

func productIDs(products []*product.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
