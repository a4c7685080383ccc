package bq

var (
	ProtoFieldJSONName = protoFieldJSONName
	SanitizeProtoJSON  = sanitizeProtoJSON
)
