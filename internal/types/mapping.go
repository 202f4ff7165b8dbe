package types

// defaultEntries is the built-in tag table. Several tags share a host type on
// purpose (the 8-bit integer, bitmap, enumeration and data tags are all bytes).
var defaultEntries = []TypeInfo{
	{Tag: "CHARACTER_STRING", HostType: "string", GoType: "string", WireCode: 0x42},
	{Tag: "IEEE_ADDRESS", HostType: "IeeeAddress", GoType: "IeeeAddress", WireCode: 0xf0},
	{Tag: "NODE_DESCRIPTOR", HostType: "NodeDescriptor", GoType: "NodeDescriptor"},
	{Tag: "SIMPLE_DESCRIPTOR", HostType: "SimpleDescriptor", GoType: "SimpleDescriptor"},
	{Tag: "COMPLEX_DESCRIPTOR", HostType: "ComplexDescriptor", GoType: "ComplexDescriptor"},
	{Tag: "POWER_DESCRIPTOR", HostType: "PowerDescriptor", GoType: "PowerDescriptor"},
	{Tag: "USER_DESCRIPTOR", HostType: "UserDescriptor", GoType: "UserDescriptor"},
	{Tag: "NEIGHBOR_TABLE", HostType: "NeighborTable", GoType: "NeighborTable"},
	{Tag: "ROUTING_TABLE", HostType: "RoutingTable", GoType: "RoutingTable"},
	{Tag: "NWK_ADDRESS", HostType: "ushort", GoType: "uint16"},
	{Tag: "N_X_IEEE_ADDRESS", HostType: "List<long>", GoType: "[]int64"},
	{Tag: "N_X_NWK_ADDRESS", HostType: "List<ushort>", GoType: "[]uint16"},
	{Tag: "CLUSTERID", HostType: "ushort", GoType: "uint16"},
	{Tag: "N_X_CLUSTERID", HostType: "List<ushort>", GoType: "[]uint16"},
	{Tag: "ENDPOINT", HostType: "byte", GoType: "uint8"},
	{Tag: "N_X_ENDPOINT", HostType: "List<byte>", GoType: "[]uint8"},
	{Tag: "N_X_EXTENSION_FIELD_SET", HostType: "List<ExtensionFieldSet>", GoType: "[]ExtensionFieldSet"},
	{Tag: "N_X_NEIGHBORS_INFORMATION", HostType: "List<NeighborInformation>", GoType: "[]NeighborInformation"},
	{Tag: "N_X_UNSIGNED_16_BIT_INTEGER", HostType: "List<ushort>", GoType: "[]uint16"},
	{Tag: "UNSIGNED_8_BIT_INTEGER_ARRAY", HostType: "byte[]", GoType: "[]byte"},
	{Tag: "X_UNSIGNED_8_BIT_INTEGER", HostType: "List<byte>", GoType: "[]uint8"},
	{Tag: "N_X_UNSIGNED_8_BIT_INTEGER", HostType: "List<byte>", GoType: "[]uint8"},
	{Tag: "N_X_ATTRIBUTE_IDENTIFIER", HostType: "List<ushort>", GoType: "[]uint16"},
	{Tag: "N_X_READ_ATTRIBUTE_STATUS_RECORD", HostType: "List<ReadAttributeStatusRecord>", GoType: "[]ReadAttributeStatusRecord"},
	{Tag: "N_X_WRITE_ATTRIBUTE_RECORD", HostType: "List<WriteAttributeRecord>", GoType: "[]WriteAttributeRecord"},
	{Tag: "N_X_WRITE_ATTRIBUTE_STATUS_RECORD", HostType: "List<WriteAttributeStatusRecord>", GoType: "[]WriteAttributeStatusRecord"},
	{Tag: "N_X_ATTRIBUTE_REPORTING_CONFIGURATION_RECORD", HostType: "List<AttributeReportingConfigurationRecord>", GoType: "[]AttributeReportingConfigurationRecord"},
	{Tag: "N_X_ATTRIBUTE_STATUS_RECORD", HostType: "List<AttributeStatusRecord>", GoType: "[]AttributeStatusRecord"},
	{Tag: "N_X_ATTRIBUTE_RECORD", HostType: "List<AttributeRecord>", GoType: "[]AttributeRecord"},
	{Tag: "N_X_ATTRIBUTE_REPORT", HostType: "List<AttributeReport>", GoType: "[]AttributeReport"},
	{Tag: "N_X_ATTRIBUTE_INFORMATION", HostType: "List<AttributeInformation>", GoType: "[]AttributeInformation"},
	{Tag: "N_X_ATTRIBUTE_SELECTOR", HostType: "object", GoType: "any"},
	{Tag: "N_X_EXTENDED_ATTRIBUTE_INFORMATION", HostType: "List<ExtendedAttributeInformation>", GoType: "[]ExtendedAttributeInformation"},
	{Tag: "BOOLEAN", HostType: "bool", GoType: "bool", WireCode: 0x10},
	{Tag: "SIGNED_8_BIT_INTEGER", HostType: "sbyte", GoType: "int8", WireCode: 0x28, Analog: true},
	{Tag: "SIGNED_16_BIT_INTEGER", HostType: "short", GoType: "int16", WireCode: 0x29, Analog: true},
	{Tag: "SIGNED_32_BIT_INTEGER", HostType: "int", GoType: "int32", WireCode: 0x2b, Analog: true},
	{Tag: "UNSIGNED_8_BIT_INTEGER", HostType: "byte", GoType: "uint8", WireCode: 0x20, Analog: true},
	{Tag: "UNSIGNED_16_BIT_INTEGER", HostType: "ushort", GoType: "uint16", WireCode: 0x21, Analog: true},
	{Tag: "UNSIGNED_24_BIT_INTEGER", HostType: "uint", GoType: "uint32", WireCode: 0x22, Analog: true},
	{Tag: "UNSIGNED_32_BIT_INTEGER", HostType: "uint", GoType: "uint32", WireCode: 0x23, Analog: true},
	{Tag: "UNSIGNED_40_BIT_INTEGER", HostType: "ulong", GoType: "uint64", WireCode: 0x24, Analog: true},
	{Tag: "UNSIGNED_48_BIT_INTEGER", HostType: "ulong", GoType: "uint64", WireCode: 0x25, Analog: true},
	{Tag: "BITMAP_8_BIT", HostType: "byte", GoType: "uint8", WireCode: 0x18},
	{Tag: "BITMAP_16_BIT", HostType: "ushort", GoType: "uint16", WireCode: 0x19},
	{Tag: "BITMAP_24_BIT", HostType: "int", GoType: "int32", WireCode: 0x1a},
	{Tag: "BITMAP_32_BIT", HostType: "int", GoType: "int32", WireCode: 0x1b},
	{Tag: "ENUMERATION_16_BIT", HostType: "ushort", GoType: "uint16", WireCode: 0x31},
	{Tag: "ENUMERATION_8_BIT", HostType: "byte", GoType: "uint8", WireCode: 0x30},
	{Tag: "DATA_8_BIT", HostType: "byte", GoType: "uint8", WireCode: 0x08},
	{Tag: "OCTET_STRING", HostType: "ByteArray", GoType: "ByteArray", WireCode: 0x41},
	{Tag: "UTCTIME", HostType: "DateTime", GoType: "time.Time", WireCode: 0xe2, Analog: true},
	{Tag: "ZDO_STATUS", HostType: "ZdoStatus", GoType: "ZdoStatus"},
	{Tag: "ZCL_STATUS", HostType: "ZclStatus", GoType: "ZclStatus"},
	{Tag: "ZIGBEE_DATA_TYPE", HostType: "ZclDataType", GoType: "ZclDataType"},
	{Tag: "EXTENDED_PANID", HostType: "ExtendedPanId", GoType: "ExtendedPanID"},
	{Tag: "BINDING_TABLE", HostType: "BindingTable", GoType: "BindingTable"},
	{Tag: "N_X_BINDING_TABLE", HostType: "List<BindingTable>", GoType: "[]BindingTable"},
	{Tag: "BYTE_ARRAY", HostType: "ByteArray", GoType: "ByteArray"},
	{Tag: "IMAGE_UPGRADE_STATUS", HostType: "ImageUpgradeStatus", GoType: "ImageUpgradeStatus"},
}
