// hostres вычисляет адрес бэкенда, достижимый из текущего окружения клиента.
//
// Loopback внутри Android-эмулятора указывает на сам эмулятор, а не на
// машину разработчика, поэтому он подменяется фиксированным алиасом 10.0.2.2.
// Подсказка debug-host приходит от инструментов разработки в виде "host:port".
package hostres

import (
	"net"
)

const (
	// AndroidEmulatorHost — фиксированный алиас «эмулятор -> хост-машина».
	AndroidEmulatorHost = "10.0.2.2"
	// LoopbackHost — дефолт для всех прочих платформ.
	LoopbackHost = "localhost"
	// PlatformAndroid — идентификатор платформы, требующей подмены loopback.
	PlatformAndroid = "android"
)

// Resolve возвращает hostname бэкенда по платформе и необязательной
// подсказке debug-host. Ошибок нет: неверный результат проявится
// только сетевой ошибкой ниже по стеку.
//
// Приоритет:
//  1. из подсказки извлекается hostname (порт отбрасывается);
//  2. android + loopback -> алиас эмулятора;
//  3. иначе hostname как есть;
//  4. без подсказки: алиас на android, loopback на прочих платформах.
func Resolve(platform, debugHost string) string {
	if debugHost != "" {
		host := debugHost
		if h, _, err := net.SplitHostPort(debugHost); err == nil {
			host = h
		}

		if platform == PlatformAndroid && isLoopback(host) {
			return AndroidEmulatorHost
		}

		return host
	}

	if platform == PlatformAndroid {
		return AndroidEmulatorHost
	}

	return LoopbackHost
}

func isLoopback(host string) bool {
	return host == "localhost" || host == "127.0.0.1"
}
