package utils

import "fmt"

// FormatPercentage 把概率格式化成百分比字符串。
// 常规保留两位小数；非零但小于 0.01% 的概率保留六位，避免显示成 0.00%。
// 只影响展示，原始概率值不做任何舍入。
func FormatPercentage(probability float64) string {
	percent := probability * 100
	if percent > 0 && percent < 0.01 {
		return fmt.Sprintf("%.6f%%", percent)
	}
	return fmt.Sprintf("%.2f%%", percent)
}
