package lf

import "go.uber.org/zap"

const (
	FieldModule = "module"
	FieldRoll   = "roll"
	FieldPath   = "path"
	FieldLineNo = "line_no"
	FieldCount  = "count"
)

func Module(module string) zap.Field {
	return zap.String(FieldModule, module)
}

func Roll(roll string) zap.Field {
	return zap.String(FieldRoll, roll)
}

func Path(path string) zap.Field {
	return zap.String(FieldPath, path)
}

func LineNo(no int) zap.Field {
	return zap.Int(FieldLineNo, no)
}

func Count(count int) zap.Field {
	return zap.Int(FieldCount, count)
}
