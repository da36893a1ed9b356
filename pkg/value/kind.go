package value

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies a built-in value kind.
type Kind uint8

// The built-in kind catalog. Numeric identifiers are stable and ordered;
// catalog walks iterate them in this order.
const (
	KindBoolean Kind = iota
	KindSByte
	KindByte
	KindInt16
	KindUInt16
	KindInt32
	KindUInt32
	KindInt64
	KindUInt64
	KindFloat
	KindDouble
	KindString
	KindDateTime
	KindGuid
	KindByteString
	KindXMLElement
	KindNodeID
	KindExpandedNodeID
	KindStatusCode
	KindQualifiedName
	KindLocalizedText
	KindExtensionObject
	KindDataValue
	KindVariant
	KindDiagnosticInfo
)

// KindCount is the number of built-in kinds.
const KindCount = 25

// IsBuiltin returns true if k is a member of the built-in catalog.
func (k Kind) IsBuiltin() bool {
	return k < KindCount
}

// Constructible returns true if k can be materialized as a leaf value.
// KindVariant and KindDiagnosticInfo are structural kinds: a variant is
// the union itself and a diagnostic info only accompanies other results.
func (k Kind) Constructible() bool {
	return k.IsBuiltin() && k != KindVariant && k != KindDiagnosticInfo
}

// String returns the kind name.
func (k Kind) String() string {
	names := []string{
		"boolean", "sbyte", "byte", "int16", "uint16", "int32", "uint32",
		"int64", "uint64", "float", "double", "string", "datetime", "guid",
		"bytestring", "xmlelement", "nodeid", "expandednodeid", "statuscode",
		"qualifiedname", "localizedtext", "extensionobject", "datavalue",
		"variant", "diagnosticinfo",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Zero returns the default instance of kind k, or nil if k is not
// constructible.
func (k Kind) Zero() any {
	switch k {
	case KindBoolean:
		return false
	case KindSByte:
		return int8(0)
	case KindByte:
		return uint8(0)
	case KindInt16:
		return int16(0)
	case KindUInt16:
		return uint16(0)
	case KindInt32:
		return int32(0)
	case KindUInt32:
		return uint32(0)
	case KindInt64:
		return int64(0)
	case KindUInt64:
		return uint64(0)
	case KindFloat:
		return float32(0)
	case KindDouble:
		return float64(0)
	case KindString:
		return ""
	case KindDateTime:
		return time.Time{}
	case KindGuid:
		return uuid.Nil
	case KindByteString:
		return []byte(nil)
	case KindXMLElement:
		return XMLElement("")
	case KindNodeID:
		return NodeID{}
	case KindExpandedNodeID:
		return ExpandedNodeID{}
	case KindStatusCode:
		return StatusCode(0)
	case KindQualifiedName:
		return QualifiedName{}
	case KindLocalizedText:
		return LocalizedText{}
	case KindExtensionObject:
		return ExtensionObject{}
	case KindDataValue:
		return DataValue{}
	default:
		return nil
	}
}

// checkKind validates that v is the canonical Go representation of kind k.
func checkKind(k Kind, v any) bool {
	switch k {
	case KindBoolean:
		_, ok := v.(bool)
		return ok
	case KindSByte:
		_, ok := v.(int8)
		return ok
	case KindByte:
		_, ok := v.(uint8)
		return ok
	case KindInt16:
		_, ok := v.(int16)
		return ok
	case KindUInt16:
		_, ok := v.(uint16)
		return ok
	case KindInt32:
		_, ok := v.(int32)
		return ok
	case KindUInt32:
		_, ok := v.(uint32)
		return ok
	case KindInt64:
		_, ok := v.(int64)
		return ok
	case KindUInt64:
		_, ok := v.(uint64)
		return ok
	case KindFloat:
		_, ok := v.(float32)
		return ok
	case KindDouble:
		_, ok := v.(float64)
		return ok
	case KindString:
		_, ok := v.(string)
		return ok
	case KindDateTime:
		_, ok := v.(time.Time)
		return ok
	case KindGuid:
		_, ok := v.(uuid.UUID)
		return ok
	case KindByteString:
		if v == nil {
			return false
		}
		_, ok := v.([]byte)
		return ok
	case KindXMLElement:
		_, ok := v.(XMLElement)
		return ok
	case KindNodeID:
		_, ok := v.(NodeID)
		return ok
	case KindExpandedNodeID:
		_, ok := v.(ExpandedNodeID)
		return ok
	case KindStatusCode:
		_, ok := v.(StatusCode)
		return ok
	case KindQualifiedName:
		_, ok := v.(QualifiedName)
		return ok
	case KindLocalizedText:
		_, ok := v.(LocalizedText)
		return ok
	case KindExtensionObject:
		_, ok := v.(ExtensionObject)
		return ok
	case KindDataValue:
		_, ok := v.(DataValue)
		return ok
	default:
		return false
	}
}
