package consts

type Operation string

const (
	OperationEdit     Operation = "edit"
	OperationFilter   Operation = "filter"
	OperationAdjust   Operation = "adjust"
	OperationSwap     Operation = "swap"
	OperationIdentify Operation = "identify"
)

func (o Operation) String() string {
	return string(o)
}

// ProducesImage reports whether a successful call of o yields exactly one image.
func (o Operation) ProducesImage() bool {
	return o != OperationIdentify
}

type Model string

const (
	GeminiFlashImage Model = "gemini-2.5-flash-image-preview"
	GeminiFlash      Model = "gemini-2.5-flash"
)

func (m Model) String() string {
	return string(m)
}

const (
	// FinishReasonStop is the only completion status treated as normal.
	FinishReasonStop = "STOP"

	ClothingItemsField = "clothing_items"

	HandleURLPrefix = "/v1/handles"
)
