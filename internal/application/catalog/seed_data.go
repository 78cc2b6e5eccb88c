package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/claimsdesk/backend/internal/domain/catalog"
)

type seedProduct struct {
	name             string
	premiumDrops     decimal.Decimal
	payoutDrops      decimal.Decimal
	coverageSummary  string
	shortDescription string
	descriptionMd    string
	features         catalog.FeatureList
	category         catalog.ProductCategory
	validityDays     int
}

// demoProducts returns the fixed demo catalog
func demoProducts() []seedProduct {
	return []seedProduct{
		{
			name:             "Airplain Delay Insurance",
			premiumDrops:     decimal.NewFromInt(1000),
			payoutDrops:      decimal.NewFromInt(1000),
			coverageSummary:  "Coverage summary for Airplain Delay Insurance",
			shortDescription: "Short description for Airplain Delay Insurance",
			descriptionMd:    "#Detailed description for Airplain Delay Insurance",
			features: catalog.FeatureList{
				{Title: "Feature 1", Body: "Description of feature 1"},
				{Title: "Feature 2", Body: "Description of feature 2"},
			},
			category:     catalog.ProductCategoryDevice,
			validityDays: 30,
		},
		{
			name:         "Right Ankle Micro-Fracture Plan",
			premiumDrops: decimal.NewFromInt(2000),
			payoutDrops:  decimal.NewFromInt(1500),
			coverageSummary: "Pays a fixed benefit only for a medically confirmed non-displaced fracture " +
				"of the RIGHT lateral malleolus (ICD-10 S82.6). Optional right ankle sprain (S93.4). " +
				"Imaging within 72h.",
			shortDescription: "Ultra-specific micro-coverage for a commuter-type ankle injury.\n" +
				"Trigger: non-displaced fracture of the RIGHT lateral malleolus (ICD-10 S82.6); " +
				"optional associated right ankle sprain (S93.4).\n" +
				"Verification: radiology (X-ray; CT if required) within 72 hours, outpatient/ED visit acceptable.\n" +
				"Exact-match rules speed adjudication; if side/site/timing/diagnosis deviate, no benefit is payable. " +
				"Includes lump-sum fracture benefit with add-ons for immobilization, outpatient visits (30 days), " +
				"and diagnostic imaging (within 72h).",
			descriptionMd: "# “Right Lateral Malleolus Only” Micro-Injury Plan\n\n" +
				"*A narrowly scoped personal accident policy that pays **only** for the injury profile " +
				"in the example certificate.*\n\n" +
				"## Product Snapshot\n" +
				"- **Coverage Trigger:** A medically confirmed **non-displaced fracture of the right lateral " +
				"malleolus** (ICD-10 **S82.6**, right), optionally accompanied by a **right lateral ankle " +
				"sprain** (ICD-10 **S93.4**).\n" +
				"- **Cause of Loss:** **Slip-and-fall** leading to ankle inversion (non-occupational).\n" +
				"- **Verification Window:** Imaging performed **within 72 hours** of the incident.\n" +
				"- **Visit Type:** Emergency or outpatient; inpatient **not required**.\n\n" +
				"## Benefit Schedule (example amounts)\n" +
				"| Benefit | Trigger | Limit |\n|---|---|---|\n" +
				"| **Lump-Sum Fracture Benefit** | Verified non-displaced right lateral malleolus fracture (S82.6) | **KRW 500,000** |\n" +
				"| **Casting/Immobilization Add-On** | Splint/cast/functional brace documented | **KRW 100,000** |\n" +
				"| **Outpatient Care Reimbursement** | Visits within **30 days** of incident | Up to **KRW 150,000** |\n" +
				"| **Diagnostic Imaging Reimbursement** | Radiology within **72h** | Up to **KRW 100,000** |\n\n" +
				"## Key Exclusions (non-exhaustive)\n" +
				"- Left ankle injuries; medial malleolus, bimalleolar, trimalleolar, tibial plafond, talar, " +
				"calcaneal, or midfoot fractures\n" +
				"- **Displaced** fractures; growth-plate injuries; stress fractures\n" +
				"- **Work-related** injuries, professional sports, military duty\n\n" +
				"> **Important:** This is a product description, not a policy. Contract wording in the issued " +
				"policy **governs**.\n",
			features: catalog.FeatureList{
				{
					Title: "Exact Trigger Only",
					Body:  "Pays only for a non-displaced fracture of the RIGHT lateral malleolus (ICD-10 S82.6); optional right ankle sprain (S93.4).",
				},
				{
					Title: "72-Hour Imaging Window",
					Body:  "Radiology (X-ray; CT if clinically required) must be performed within 72 hours of the incident for eligibility.",
				},
				{
					Title: "Simple Proof of Treatment",
					Body:  "Splint/cast/functional brace, plus standard acute care (RICE/analgesics) accepted as treatment evidence.",
				},
				{
					Title: "Fast Adjudication",
					Body:  "Exact-match criteria minimize disputes and accelerate payout decisions.",
				},
				{
					Title: "Clear Benefits",
					Body:  "Lump-sum fracture benefit, immobilization add-on, outpatient reimbursement (30 days), and imaging reimbursement (within 72h).",
				},
				{
					Title: "Key Exclusions",
					Body:  "Left ankle, displaced fractures, tibial or other ankle/foot fractures, high-energy/occupational injuries, or timing/documentation gaps.",
				},
				{
					Title: "Simple Claim Steps",
					Body:  "Notify within 7 days, obtain Injury Diagnosis Certificate + radiology report + receipts, submit via portal/app.",
				},
			},
			category:     catalog.ProductCategoryHealth,
			validityDays: 30,
		},
	}
}
