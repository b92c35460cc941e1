/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"github.com/spf13/cobra"

	rs "github.com/suparena/redshiftctl"
)

func resourceCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
	}
}

func (a *app) clusterCmd() *cobra.Command {
	cmd := resourceCmd("cluster", "Manage provisioned clusters")
	cmd.AddCommand(
		listCommand(a, rs.OpDescribeClusters, "List clusters", rs.ClusterSelectors, (*rs.Service).DescribeClusters),
		actionCommand(a, rs.OpCreateCluster, "Create a cluster", rs.ClusterResultSelectors, (*rs.Service).CreateCluster),
		actionCommand(a, rs.OpModifyCluster, "Modify a cluster", rs.ClusterResultSelectors, (*rs.Service).ModifyCluster),
		actionCommand(a, rs.OpDeleteCluster, "Delete a cluster", rs.ClusterResultSelectors, (*rs.Service).DeleteCluster),
		actionCommand(a, rs.OpRebootCluster, "Reboot a cluster", rs.ClusterResultSelectors, (*rs.Service).RebootCluster),
		actionCommand(a, rs.OpPauseCluster, "Pause a cluster", rs.ClusterResultSelectors, (*rs.Service).PauseCluster),
		actionCommand(a, rs.OpResumeCluster, "Resume a paused cluster", rs.ClusterResultSelectors, (*rs.Service).ResumeCluster),
	)
	return cmd
}

func (a *app) snapshotCmd() *cobra.Command {
	cmd := resourceCmd("snapshot", "Manage cluster snapshots")
	cmd.AddCommand(
		listCommand(a, rs.OpDescribeClusterSnapshots, "List snapshots", rs.SnapshotSelectors, (*rs.Service).DescribeClusterSnapshots),
		actionCommand(a, rs.OpCreateClusterSnapshot, "Create a manual snapshot", rs.SnapshotResultSelectors, (*rs.Service).CreateClusterSnapshot),
		actionCommand(a, rs.OpCopyClusterSnapshot, "Copy a snapshot", rs.SnapshotResultSelectors, (*rs.Service).CopyClusterSnapshot),
		actionCommand(a, rs.OpDeleteClusterSnapshot, "Delete a manual snapshot", rs.SnapshotResultSelectors, (*rs.Service).DeleteClusterSnapshot),
	)
	return cmd
}

func (a *app) parameterGroupCmd() *cobra.Command {
	cmd := resourceCmd("parameter-group", "Manage cluster parameter groups")
	cmd.AddCommand(
		listCommand(a, rs.OpDescribeClusterParameterGroups, "List parameter groups", rs.ParameterGroupSelectors, (*rs.Service).DescribeClusterParameterGroups),
		listCommand(a, rs.OpDescribeClusterParameters, "List the parameters of a group", rs.ParameterSelectors, (*rs.Service).DescribeClusterParameters),
		actionCommand(a, rs.OpCreateClusterParameterGroup, "Create a parameter group", rs.ParameterGroupResultSelectors, (*rs.Service).CreateClusterParameterGroup),
		actionCommand(a, rs.OpModifyClusterParameterGroup, "Set parameters in a group", rs.ParameterGroupStatusSelectors, (*rs.Service).ModifyClusterParameterGroup),
		actionCommand(a, rs.OpResetClusterParameterGroup, "Reset parameters to their defaults", rs.ParameterGroupStatusSelectors, (*rs.Service).ResetClusterParameterGroup),
		commandOnly(a, rs.OpDeleteClusterParameterGroup, "Delete a parameter group", (*rs.Service).DeleteClusterParameterGroup),
	)
	return cmd
}

func (a *app) usageLimitCmd() *cobra.Command {
	cmd := resourceCmd("usage-limit", "Manage usage limits")
	cmd.AddCommand(
		listCommand(a, rs.OpDescribeUsageLimits, "List usage limits", rs.UsageLimitSelectors, (*rs.Service).DescribeUsageLimits),
		actionCommand(a, rs.OpCreateUsageLimit, "Create a usage limit", rs.UsageLimitSelectors, (*rs.Service).CreateUsageLimit),
		actionCommand(a, rs.OpModifyUsageLimit, "Modify a usage limit", rs.UsageLimitSelectors, (*rs.Service).ModifyUsageLimit),
		commandOnly(a, rs.OpDeleteUsageLimit, "Delete a usage limit", (*rs.Service).DeleteUsageLimit),
	)
	return cmd
}

func (a *app) eventSubscriptionCmd() *cobra.Command {
	cmd := resourceCmd("event-subscription", "Manage event notification subscriptions")
	cmd.AddCommand(
		listCommand(a, rs.OpDescribeEventSubscriptions, "List event subscriptions", rs.EventSubscriptionSelectors, (*rs.Service).DescribeEventSubscriptions),
		actionCommand(a, rs.OpCreateEventSubscription, "Create an event subscription", rs.EventSubscriptionResultSelectors, (*rs.Service).CreateEventSubscription),
		actionCommand(a, rs.OpModifyEventSubscription, "Modify an event subscription", rs.EventSubscriptionResultSelectors, (*rs.Service).ModifyEventSubscription),
		commandOnly(a, rs.OpDeleteEventSubscription, "Delete an event subscription", (*rs.Service).DeleteEventSubscription),
	)
	return cmd
}

func (a *app) eventCmd() *cobra.Command {
	cmd := resourceCmd("event", "Read cluster events")
	cmd.AddCommand(
		listCommand(a, rs.OpDescribeEvents, "List events", rs.EventSelectors, (*rs.Service).DescribeEvents),
	)
	return cmd
}

func (a *app) idcApplicationCmd() *cobra.Command {
	cmd := resourceCmd("idc-application", "Manage IAM Identity Center applications")
	cmd.AddCommand(
		listCommand(a, rs.OpDescribeRedshiftIdcApplications, "List applications", rs.IdcApplicationSelectors, (*rs.Service).DescribeRedshiftIdcApplications),
		actionCommand(a, rs.OpCreateRedshiftIdcApplication, "Create an application", rs.IdcApplicationResultSelectors, (*rs.Service).CreateRedshiftIdcApplication),
		actionCommand(a, rs.OpModifyRedshiftIdcApplication, "Modify an application", rs.IdcApplicationResultSelectors, (*rs.Service).ModifyRedshiftIdcApplication),
		commandOnly(a, rs.OpDeleteRedshiftIdcApplication, "Delete an application", (*rs.Service).DeleteRedshiftIdcApplication),
	)
	return cmd
}

func (a *app) tagCmd() *cobra.Command {
	cmd := resourceCmd("tag", "Manage resource tags")
	cmd.AddCommand(
		listCommand(a, rs.OpDescribeTags, "List tags", rs.TaggedResourceSelectors, (*rs.Service).DescribeTags),
		commandOnly(a, rs.OpCreateTags, "Add or overwrite tags", (*rs.Service).CreateTags),
		commandOnly(a, rs.OpDeleteTags, "Remove tags", (*rs.Service).DeleteTags),
	)
	return cmd
}

func (a *app) subnetGroupCmd() *cobra.Command {
	cmd := resourceCmd("subnet-group", "Read cluster subnet groups")
	cmd.AddCommand(
		listCommand(a, rs.OpDescribeClusterSubnetGroups, "List subnet groups", rs.SubnetGroupSelectors, (*rs.Service).DescribeClusterSubnetGroups),
	)
	return cmd
}
