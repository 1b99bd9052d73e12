package typenames

// XSDNamespace is the namespace of the external lexical vocabulary.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema"

// External primitive type names recognised by the translator.
const (
	XSDID                 = "ID"
	XSDNCName             = "NCName"
	XSDString             = "string"
	XSDAnyType            = "anyType"
	XSDInt                = "int"
	XSDInteger            = "integer"
	XSDNegativeInteger    = "negativeInteger"
	XSDNonNegativeInteger = "nonNegativeInteger"
	XSDPositiveInteger    = "positiveInteger"
	XSDNonpositiveInteger = "nonpositiveInteger"
	XSDNonPositiveInteger = "nonPositiveInteger"
	XSDUnsignedShort      = "unsignedShort"
	XSDUnsignedInt        = "unsignedInt"
	XSDUnsignedLong       = "unsignedLong"
	XSDDouble             = "double"
	XSDShort              = "short"
	XSDUnsignedByte       = "unsignedByte"
	XSDFloat              = "float"
	XSDBoolean            = "boolean"
	XSDByte               = "byte"
	XSDBase64Binary       = "base64Binary"
	XSDHexBinary          = "hexBinary"
	XSDAnyURI             = "anyURI"
	XSDQName              = "QName"
)
