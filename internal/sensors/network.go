package sensors

import (
	"strings"

	"github.com/shirou/gopsutil/v3/net"
	"golang.org/x/exp/slices"
)

const NoIp = "No IP"

// HostPrimaryIp returns the first IPv4 address of an interface that is up and
// not a loopback device.
func HostPrimaryIp() string {
	interfaces, err := net.Interfaces()
	if err != nil {
		return NoIp
	}
	return primaryIp(interfaces)
}

// InterfaceIp returns the IPv4 address of the named interface.
func InterfaceIp(name string) string {
	interfaces, err := net.Interfaces()
	if err != nil {
		return NoIp
	}
	for _, iface := range interfaces {
		if iface.Name == name {
			return firstIpv4(iface)
		}
	}
	return NoIp
}

func primaryIp(interfaces net.InterfaceStatList) string {
	for _, iface := range interfaces {
		if slices.Contains(iface.Flags, "loopback") || !slices.Contains(iface.Flags, "up") {
			continue
		}
		if ip := firstIpv4(iface); ip != NoIp {
			return ip
		}
	}
	return NoIp
}

func firstIpv4(iface net.InterfaceStat) string {
	for _, addr := range iface.Addrs {
		ip, _, _ := strings.Cut(addr.Addr, "/")
		if strings.Count(ip, ".") == 3 {
			return ip
		}
	}
	return NoIp
}
