package systems

// timeEpsilon 倒计时判定为结束的容差
// dt 按 1/60 秒累加会产生浮点误差，剩余时间小于它即视为到期
const timeEpsilon = 1e-9
