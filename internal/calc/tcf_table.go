package calc

const (
	// MinTableCelsius and MaxTableCelsius bound the correction table keys.
	MinTableCelsius = -24
	MaxTableCelsius = 110
)

// tcfTable maps an integer Celsius temperature to the multiplier that refers an
// insulation-resistance reading taken at that temperature back to 20 °C.
var tcfTable = map[int]float64{
	-24: 0.047, -23: 0.051, -22: 0.054, -21: 0.058, -20: 0.062,
	-19: 0.067, -18: 0.072, -17: 0.077, -16: 0.082, -15: 0.088,
	-14: 0.095, -13: 0.102, -12: 0.109, -11: 0.117, -10: 0.125,
	-9: 0.134, -8: 0.145, -7: 0.156, -6: 0.167, -5: 0.18,
	-4: 0.192, -3: 0.205, -2: 0.219, -1: 0.234, 0: 0.25,
	1: 0.269, 2: 0.289, 3: 0.311, 4: 0.335, 5: 0.36,
	6: 0.384, 7: 0.411, 8: 0.438, 9: 0.468, 10: 0.5,
	11: 0.542, 12: 0.588, 13: 0.638, 14: 0.692, 15: 0.75,
	16: 0.794, 17: 0.841, 18: 0.891, 19: 0.944, 20: 1,
	21: 1.07, 22: 1.144, 23: 1.224, 24: 1.309, 25: 1.4,
	26: 1.5, 27: 1.608, 28: 1.724, 29: 1.847, 30: 1.98,
	31: 2.122, 32: 2.274, 33: 2.438, 34: 2.613, 35: 2.8,
	36: 2.999, 37: 3.213, 38: 3.442, 39: 3.687, 40: 3.95,
	41: 4.236, 42: 4.542, 43: 4.87, 44: 5.222, 45: 5.6,
	46: 5.991, 47: 6.41, 48: 6.858, 49: 7.337, 50: 7.85,
	51: 8.428, 52: 9.049, 53: 9.716, 54: 10.432, 55: 11.2,
	56: 12.006, 57: 12.869, 58: 13.794, 59: 14.787, 60: 15.85,
	61: 16.985, 62: 18.202, 63: 19.506, 64: 20.903, 65: 22.4,
	66: 24.019, 67: 25.754, 68: 27.615, 69: 29.61, 70: 31.75,
	71: 33.998, 72: 36.406, 73: 38.984, 74: 41.744, 75: 44.7,
	76: 47.951, 77: 51.439, 78: 55.181, 79: 59.194, 80: 63.5,
	81: 68.042, 82: 72.909, 83: 78.124, 84: 83.712, 85: 89.7,
	86: 96.16, 87: 103.085, 88: 110.509, 89: 118.468, 90: 127,
	91: 136.175, 92: 146.013, 93: 156.562, 94: 167.872, 95: 180,
	96: 192.835, 97: 206.584, 98: 221.314, 99: 237.094, 100: 254,
	101: 272.199, 102: 291.701, 103: 312.601, 104: 334.998, 105: 359,
	106: 384.963, 107: 412.804, 108: 442.658, 109: 474.671, 110: 509,
}
