// Package hypergeom 实现超几何分布的精确计算：
// 二项式系数走大整数，概率只在最后一步转成 float64。
package hypergeom

import "math/big"

// BinomialCoefficient 计算组合数 C(n, k)。
// k < 0 或 k > n 返回 0；结果用 big.Int 表示，n 大也不会溢出。
func BinomialCoefficient(n, k int) *big.Int {
	if k < 0 || k > n {
		return big.NewInt(0)
	}
	if k == 0 || k == n {
		return big.NewInt(1)
	}

	// 对称性 C(n,k) = C(n,n-k)，取小的一边少乘几轮
	if n-k < k {
		k = n - k
	}

	result := big.NewInt(1)
	factor := new(big.Int)
	for i := 0; i < k; i++ {
		// 先乘 (n-i) 再除 (i+1)。乘完之后累积值恰好是 C(n, i+1) 的
		// 整数倍数形态，每一步整除都不丢精度
		result.Mul(result, factor.SetInt64(int64(n-i)))
		result.Quo(result, factor.SetInt64(int64(i+1)))
	}
	return result
}

// PMF 计算超几何分布的概率质量函数 P(X = k)：
// 总共 population 张牌，其中 successes 张命中，抽 draws 张，恰好抽到 k 张命中的概率。
// 参数退化导致分母为 0 时按 0.0 处理，不报错。
func PMF(k, population, successes, draws int) float64 {
	denominator := BinomialCoefficient(population, draws)
	if denominator.Sign() == 0 {
		return 0.0
	}

	numerator := new(big.Int).Mul(
		BinomialCoefficient(successes, k),
		BinomialCoefficient(population-successes, draws-k),
	)

	// 分子分母都是精确整数，用 big.Rat 表示比值，只在这一步转 float64
	ratio, _ := new(big.Rat).SetFrac(numerator, denominator).Float64()
	return ratio
}

// CDF 计算累积分布 P(X <= k)，即 PMF 从 0 到 k 逐项累加。
// k < 0 时返回 0.0。
func CDF(k, population, successes, draws int) float64 {
	cumulative := 0.0
	for i := 0; i <= k; i++ {
		cumulative += PMF(i, population, successes, draws)
	}
	return cumulative
}
