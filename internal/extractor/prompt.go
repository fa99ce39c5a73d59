package extractor

// recordJSONShape is the exact JSON shape the model is instructed to
// return, mirroring invoice.ExtractedInvoiceData.
const recordJSONShape = `{
  "supplier_name": "",
  "supplier_gstin": "",
  "buyer_gstin": "",
  "invoice_number": "",
  "invoice_date": "",
  "place_of_supply": "",
  "invoice_type": "B2B",
  "hsn_or_sac": "",
  "description": "",
  "quantity": "",
  "unit": "",
  "taxable_value": 0,
  "cgst": 0,
  "sgst": 0,
  "igst": 0,
  "cess": 0,
  "total_invoice_value": 0,
  "is_reverse_charge": false,
  "is_itc_eligible": true,
  "confidence": {
    "supplier_gstin": 0,
    "invoice_number": 0,
    "tax_values": 0
  }
}`

const promptInstructions = `Important instructions:
1. Extract GSTIN in format: 22AAAAA0000A1Z5 (15 characters)
2. Date format: YYYY-MM-DD
3. Invoice type: one of B2B, B2C, B2CL, EXPWP, EXPWOP, SEZ, SEZWP, SEZWOP, DEXP, Import, RCM
4. All amounts as numbers (not strings)
5. Confidence scores between 0-1 based on clarity of extracted data
6. If a field is not found, use empty string for text fields, 0 for numbers, false for booleans
7. place_of_supply should be a state name (e.g., "Maharashtra", "Delhi")`

// BuildTextPrompt returns the extraction prompt for raw OCR text.
func BuildTextPrompt(ocrText string) string {
	return `Convert the following OCR text of a GST invoice into structured JSON following this schema.
Infer missing labels, normalize vendor-specific wording, and map fields to GST requirements.

OCR Text:
` + ocrText + `

Return ONLY valid JSON in this exact format (no markdown, no explanations):
` + recordJSONShape + `

` + promptInstructions
}

// BuildImagePrompt returns the extraction prompt for an invoice
// image or PDF payload.
func BuildImagePrompt() string {
	return `Analyze this GST invoice document and extract all relevant information into structured JSON.

Return ONLY valid JSON in this exact format (no markdown, no explanations):
` + recordJSONShape + `

` + promptInstructions
}
